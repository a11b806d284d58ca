package record

// Decode runs the decoder bound to a role. A false result means no
// structured decode is available: a short or all-zero block, or a role with
// no structured layout (raw bytes stay readable either way).
func Decode(role Role, data []byte, index int, env Env) (Record, bool) {
	switch role {
	case RoleTrainerParty:
		return wrap(DecodeTrainerParty(data, index, env))
	case RoleTrainerProfile:
		return wrap(DecodeTrainerProfile(data, index, env))
	case RoleSpeciesStats:
		return wrap(DecodeSpeciesStats(data, index, env))
	case RoleLearnsets:
		return wrap(DecodeLearnset(data, index, env))
	case RoleEvolutions:
		return wrap(DecodeEvolution(data, index, env))
	case RoleMoveData:
		return wrap(DecodeMoveData(data, index, env))
	case RoleEncounters:
		return wrap(DecodeEncounters(data, index, env))
	case RoleContest:
		return wrap(DecodeContest(data, index, env))
	case RolePokeathlon:
		return wrap(DecodePerformance(data, index, env))
	case RolePWTRental:
		return poolEntry(data, index, env, "Rental", false)
	case RolePWTRentalB:
		return poolEntry(data, index, env, "Rental-B", false)
	case RolePWTChampions:
		return poolEntry(data, index, env, "Champions", true)
	case RolePWTChampionsB:
		return poolEntry(data, index, env, "Champions-B", true)
	case RoleSubwayPool:
		return poolEntry(data, index, env, "Battle Subway", false)
	case RoleTowerPool:
		return poolEntry(data, index, env, "Battle Tower", true)
	case RolePWTRoster:
		return roster(data, index, env, "Rosters")
	case RolePWTRosterB:
		return roster(data, index, env, "Rosters-B")
	case RoleSubwayRoster:
		return roster(data, index, env, "Battle Subway")
	case RoleTowerRoster:
		return roster(data, index, env, "Battle Tower")
	case RolePWTConfig:
		return trainerConfig(data, index, env, "Trainers")
	case RolePWTConfigB:
		return trainerConfig(data, index, env, "Trainers-B")
	case RoleNone, RoleText, RoleItems, RolePWTDownload, RolePWTUI:
		// No structured layout bound to these roles.
		return nil, false
	default:
		return nil, false
	}
}

func wrap[T Record](rec T, ok bool) (Record, bool) {
	if !ok {
		return nil, false
	}
	return rec, true
}

func poolEntry(data []byte, index int, env Env, pool string, itemField bool) (Record, bool) {
	entry, ok := DecodePoolEntry(data, index, env, itemField)
	if !ok {
		return nil, false
	}
	entry.Pool = pool
	return entry, true
}

func roster(data []byte, index int, env Env, pool string) (Record, bool) {
	r, ok := DecodeRoster(data, index, env)
	if !ok {
		return nil, false
	}
	r.Pool = pool
	return r, true
}

func trainerConfig(data []byte, index int, env Env, pool string) (Record, bool) {
	cfg, ok := DecodeTrainerConfig(data, index, env)
	if !ok {
		return nil, false
	}
	cfg.Pool = pool
	return cfg, true
}
