// Package session ties a loaded game together: it bootstraps the text name
// tables from the game's text archive, identifies them by content, and
// decodes data records on demand with all name references resolved.
package session

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/retroenv/retrogolib/log"

	"github.com/Creative-Genius2/LinkPlay/internal/codec"
	"github.com/Creative-Genius2/LinkPlay/internal/detect"
	"github.com/Creative-Genius2/LinkPlay/internal/gamedef"
	"github.com/Creative-Genius2/LinkPlay/internal/record"
	"github.com/Creative-Genius2/LinkPlay/internal/source"
	"github.com/Creative-Genius2/LinkPlay/internal/text"
)

// Session is one loaded game: its data source, profile and the decoded,
// identified text tables. It implements record.Env, so decoders resolve
// names and sibling records through it. Safe for concurrent use.
type Session struct {
	logger  *log.Logger
	source  source.Source
	codec   *codec.Codec
	profile gamedef.Profile

	mu      sync.RWMutex
	mult    uint16
	tables  map[int][]string
	aliases detect.Result
}

// New creates a session over a data source. Bootstrap must run before name
// lookups resolve.
func New(logger *log.Logger, src source.Source, cdc *codec.Codec, profile gamedef.Profile) *Session {
	return &Session{
		logger:  logger,
		source:  src,
		codec:   cdc,
		profile: profile,
		tables:  map[int][]string{},
		aliases: detect.Result{},
	}
}

// Profile returns the game profile the session was opened with.
func (s *Session) Profile() gamedef.Profile {
	return s.profile
}

// Bootstrap decodes every entry of the text archive and identifies the name
// tables by content. For generation V games the stream key multiplier is
// derived first; the two archive indices the species table usually sits at
// are tried before a full scan.
func (s *Session) Bootstrap(ctx context.Context) error {
	textPath, ok := s.profile.Path(record.RoleText)
	if !ok {
		return fmt.Errorf("profile %s: no text archive wired", s.profile.Code)
	}

	count, err := s.source.EntryCount(textPath)
	if err != nil {
		return fmt.Errorf("counting text archive entries: %w", err)
	}

	var mult uint16
	if s.profile.Generation >= 5 {
		mult, err = s.deriveMult(textPath, count)
		if err != nil {
			return err
		}
		s.logger.Debug("derived text key multiplier",
			log.String("mult", fmt.Sprintf("0x%04X", mult)))
	}

	tables := make(map[int][]string, count)
	for i := 0; i < count; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		data, err := s.source.ArchiveEntry(textPath, i)
		if err != nil {
			continue
		}
		if s.profile.Generation >= 5 {
			tables[i] = text.DecodeGenV(data, mult)
		} else {
			tables[i] = text.DecodeGenIV(data)
		}
	}

	aliases := detect.Tables(tables)

	s.mu.Lock()
	s.mult = mult
	s.tables = tables
	s.aliases = aliases
	s.mu.Unlock()

	s.logger.Info("text tables bootstrapped",
		log.String("game", s.profile.Title),
		log.Int("tables", len(tables)),
		log.Int("identified", len(aliases)))
	return nil
}

// deriveMult finds the text key multiplier by locating the species table:
// a candidate archive entry yields the right multiplier when entry 1
// decodes to the first species name.
func (s *Session) deriveMult(textPath string, count int) (uint16, error) {
	candidates := make([]int, 0, count)
	for _, c := range []int{90, 70} {
		if c < count {
			candidates = append(candidates, c)
		}
	}
	for i := 0; i < count; i++ {
		if i != 90 && i != 70 {
			candidates = append(candidates, i)
		}
	}

	for _, c := range candidates {
		data, err := s.source.ArchiveEntry(textPath, c)
		if err != nil {
			continue
		}
		mult := text.DeriveMult(data)
		entries := text.DecodeGenV(data, mult)
		if len(entries) > 1 && entries[1] == "Bulbasaur" {
			return mult, nil
		}
	}
	return 0, text.ErrMultDerivation
}

// Mult returns the derived text key multiplier, zero before Bootstrap or
// for generation IV games.
func (s *Session) Mult() uint16 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mult
}

// Aliases returns the identified table aliases mapped to their archive
// indices.
func (s *Session) Aliases() detect.Result {
	s.mu.RLock()
	defer s.mu.RUnlock()
	aliases := make(detect.Result, len(s.aliases))
	for alias, idx := range s.aliases {
		aliases[alias] = idx
	}
	return aliases
}

// Table returns a decoded text table by key: either an identified alias
// like "species" or a numeric archive index. Indices missed by Bootstrap
// (archives grown since, partial bootstraps) are decoded lazily.
func (s *Session) Table(key string) ([]string, bool) {
	if idx, err := strconv.Atoi(key); err == nil {
		return s.tableByIndex(idx)
	}

	s.mu.RLock()
	idx, ok := s.aliases.Index(detect.Alias(key))
	s.mu.RUnlock()
	if !ok {
		return nil, false
	}
	return s.tableByIndex(idx)
}

func (s *Session) tableByIndex(idx int) ([]string, bool) {
	s.mu.RLock()
	entries, ok := s.tables[idx]
	mult := s.mult
	s.mu.RUnlock()
	if ok {
		return entries, true
	}

	textPath, ok := s.profile.Path(record.RoleText)
	if !ok {
		return nil, false
	}
	data, err := s.source.ArchiveEntry(textPath, idx)
	if err != nil {
		return nil, false
	}

	if s.profile.Generation >= 5 {
		entries = text.DecodeGenV(data, mult)
	} else {
		entries = text.DecodeGenIV(data)
	}

	s.mu.Lock()
	s.tables[idx] = entries
	s.mu.Unlock()
	return entries, true
}

// TableIndices lists the archive indices of all decoded text tables.
func (s *Session) TableIndices() []int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	indices := make([]int, 0, len(s.tables))
	for idx := range s.tables {
		indices = append(indices, idx)
	}
	return indices
}

// Entry is one decoded archive entry: its raw bytes after decompression
// plus, when the archive has a wired role with a structured layout, the
// decoded record.
type Entry struct {
	Path   string
	Index  int
	Role   record.Role
	Kind   codec.Kind
	Raw    []byte
	Record record.Record
}

// Entry loads, decompresses and decodes one archive entry.
func (s *Session) Entry(ctx context.Context, path string, index int) (Entry, error) {
	data, err := s.source.ArchiveEntry(path, index)
	if err != nil {
		return Entry{}, fmt.Errorf("loading %s:%d: %w", path, index, err)
	}

	raw, kind := s.codec.Decode(ctx, data)
	entry := Entry{
		Path:  path,
		Index: index,
		Role:  s.profile.RoleFor(path),
		Kind:  kind,
		Raw:   raw,
	}
	if rec, ok := record.Decode(entry.Role, raw, index, s); ok {
		entry.Record = rec
	}
	return entry, nil
}

// EntryByRef loads an entry via an "<archive path>:<index>" reference.
func (s *Session) EntryByRef(ctx context.Context, ref string) (Entry, error) {
	path, index, err := gamedef.ParseRef(ref)
	if err != nil {
		return Entry{}, err
	}
	return s.Entry(ctx, path, index)
}

// Generation implements record.Env.
func (s *Session) Generation() int {
	return s.profile.Generation
}

// Sibling implements record.Env: it loads another role's record by index
// from the profile's archive for that role.
func (s *Session) Sibling(role record.Role, index int) ([]byte, bool) {
	path, ok := s.profile.Path(role)
	if !ok {
		return nil, false
	}
	data, err := s.source.ArchiveEntry(path, index)
	if err != nil {
		return nil, false
	}
	raw, _ := s.codec.Decode(context.Background(), data)
	return raw, true
}

// name resolves one entry of an aliased table, substituting a placeholder
// embedding the id when the table is missing or the id out of range.
func (s *Session) name(alias detect.Alias, id int, kind string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if idx, ok := s.aliases.Index(alias); ok {
		if entries := s.tables[idx]; id >= 0 && id < len(entries) {
			return entries[id]
		}
	}
	return kind + "#" + strconv.Itoa(id)
}

// optional resolves one entry of an aliased table, empty when unresolvable.
func (s *Session) optional(alias detect.Alias, index int) string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if idx, ok := s.aliases.Index(alias); ok {
		if entries := s.tables[idx]; index >= 0 && index < len(entries) {
			return entries[index]
		}
	}
	return ""
}

// Species implements record.Names.
func (s *Session) Species(id int) string { return s.name(detect.Species, id, "") }

// Move implements record.Names.
func (s *Session) Move(id int) string { return s.name(detect.Moves, id, "move") }

// Item implements record.Names.
func (s *Session) Item(id int) string { return s.name(detect.Items, id, "item") }

// Ability implements record.Names.
func (s *Session) Ability(id int) string { return s.name(detect.Abilities, id, "ability") }

// Nature resolves a nature name, stripped of non-printable glyphs and the
// " nature." suffix some tables carry.
func (s *Session) Nature(id int) string {
	raw := s.name(detect.Natures, id, "nature")
	return cleanNature(raw)
}

// TypeName implements record.Names.
func (s *Session) TypeName(id int) string { return s.name(detect.TypeNames, id, "type") }

// TrainerClass implements record.Names.
func (s *Session) TrainerClass(id int) string { return s.name(detect.TrainerClasses, id, "class") }

// cleanNature drops non-printable glyphs and the " nature." suffix that
// flavor-text nature tables carry around the bare name.
func cleanNature(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= 0x20 && r <= 0x7E {
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(strings.ReplaceAll(b.String(), " nature.", ""))
}

// TrainerName implements record.Names.
func (s *Session) TrainerName(index int) string { return s.optional(detect.TrainerNames, index) }

// Location implements record.Names.
func (s *Session) Location(index int) string { return s.optional(detect.LocationNames, index) }
