package library

import (
	"context"
	"fmt"
	"strings"
)

// UnassignedFolderName is the reserved system folder that holds tracks
// filed nowhere else. It always sorts first via a negative order.
const UnassignedFolderName = "Unassigned"

type defaultFolder struct {
	path        string
	parent      string
	description string
}

// defaultTaxonomy is the folder structure seeded on first run. Names mirror
// how tabletop audio is usually grouped; the mapping rules target these
// paths.
var defaultTaxonomy = []defaultFolder{
	{"Combat", "", "Combat and warfare sounds"},
	{"Environments", "", "Environmental and location sounds"},
	{"Creatures", "", "Creature and character sounds"},
	{"Magic & Powers", "", "Magic and supernatural power sounds"},
	{"Social Encounters", "", "Social interaction sounds"},
	{"Horror & Terror", "", "Horror and scary atmosphere sounds"},
	{"Moods & Atmosphere", "", "Mood and atmosphere sounds"},
	{"Cultural Styles", "", "Cultural and historical style sounds"},
	{"Fantasy Genres", "", "Fantasy genre specific sounds"},
	{"SFX & Foley", "", "Sound effects and foley"},
	{"Session Structure", "", "Session structure sounds"},

	{"Combat/Weapons", "Combat", "Weapon sounds"},
	{"Combat/Weapons/Melee", "Combat/Weapons", "Melee weapon sounds"},
	{"Combat/Weapons/Ranged", "Combat/Weapons", "Ranged weapon sounds"},
	{"Combat/Weapons/Magical", "Combat/Weapons", "Magical weapon sounds"},
	{"Combat/Armor & Defense", "Combat", "Armor and defense sounds"},
	{"Combat/Combat Phases", "Combat", "Combat phase sounds"},
	{"Combat/Combat Phases/Ambush", "Combat/Combat Phases", "Ambush sounds"},
	{"Combat/Combat Phases/Skirmish", "Combat/Combat Phases", "Skirmish sounds"},
	{"Combat/Combat Phases/Siege", "Combat/Combat Phases", "Siege sounds"},
	{"Combat/Combat Phases/Final Battle", "Combat/Combat Phases", "Final battle sounds"},
	{"Combat/Victory & Defeat", "Combat", "Victory and defeat sounds"},

	{"Environments/Natural", "Environments", "Natural environment sounds"},
	{"Environments/Natural/Forest", "Environments/Natural", "Forest sounds"},
	{"Environments/Natural/Mountains", "Environments/Natural", "Mountain sounds"},
	{"Environments/Natural/Water", "Environments/Natural", "Water environment sounds"},
	{"Environments/Natural/Weather", "Environments/Natural", "Weather sounds"},
	{"Environments/Urban", "Environments", "Urban environment sounds"},
	{"Environments/Urban/Cities", "Environments/Urban", "City sounds"},
	{"Environments/Urban/Villages", "Environments/Urban", "Village sounds"},
	{"Environments/Urban/Buildings", "Environments/Urban", "Building sounds"},
	{"Environments/Urban/Buildings/Taverns", "Environments/Urban/Buildings", "Tavern sounds"},
	{"Environments/Urban/Buildings/Temples", "Environments/Urban/Buildings", "Temple sounds"},
	{"Environments/Dungeons", "Environments", "Dungeon sounds"},
	{"Environments/Dungeons/Stone Corridors", "Environments/Dungeons", "Stone corridor sounds"},
	{"Environments/Dungeons/Boss Chambers", "Environments/Dungeons", "Boss chamber sounds"},

	{"Creatures/Humanoids", "Creatures", "Humanoid sounds"},
	{"Creatures/Humanoids/Civilized", "Creatures/Humanoids", "Civilized humanoid sounds"},
	{"Creatures/Humanoids/Hostile", "Creatures/Humanoids", "Hostile humanoid sounds"},
	{"Creatures/Beasts", "Creatures", "Beast sounds"},
	{"Creatures/Monsters", "Creatures", "Monster sounds"},
	{"Creatures/Monsters/Dragons", "Creatures/Monsters", "Dragon sounds"},
	{"Creatures/Monsters/Undead", "Creatures/Monsters", "Undead sounds"},

	{"Magic & Powers/Arcane", "Magic & Powers", "Arcane magic sounds"},
	{"Magic & Powers/Divine", "Magic & Powers", "Divine magic sounds"},
	{"Magic & Powers/Elemental", "Magic & Powers", "Elemental magic sounds"},

	{"Social Encounters/Taverns & Inns", "Social Encounters", "Tavern and inn scenes"},
	{"Social Encounters/Markets & Trade", "Social Encounters", "Market and trade scenes"},
	{"Social Encounters/Courts & Politics", "Social Encounters", "Court and political scenes"},

	{"Horror & Terror/Dread & Suspense", "Horror & Terror", "Dread and suspense sounds"},
	{"Horror & Terror/Jump Scares", "Horror & Terror", "Jump scare sounds"},

	{"Moods & Atmosphere/Tension", "Moods & Atmosphere", "Tense atmosphere"},
	{"Moods & Atmosphere/Peaceful", "Moods & Atmosphere", "Peaceful atmosphere"},
	{"Moods & Atmosphere/Epic", "Moods & Atmosphere", "Epic atmosphere"},
	{"Moods & Atmosphere/Mysterious", "Moods & Atmosphere", "Mysterious atmosphere"},
	{"Moods & Atmosphere/Somber", "Moods & Atmosphere", "Somber atmosphere"},

	{"SFX & Foley/Impacts", "SFX & Foley", "Impact sound effects"},
	{"SFX & Foley/Movement", "SFX & Foley", "Movement sound effects"},
	{"SFX & Foley/Objects", "SFX & Foley", "Object sound effects"},

	{"Session Structure/Opening", "Session Structure", "Session opening sounds"},
	{"Session Structure/Intermission", "Session Structure", "Intermission sounds"},
	{"Session Structure/Climax", "Session Structure", "Climax sounds"},
	{"Session Structure/Closing", "Session Structure", "Closing sounds"},
}

// EnsureDefaultTaxonomy seeds the Unassigned folder and, on first run, the
// default folder structure. It is idempotent: once any non-Unassigned system
// folder exists the seed step is skipped, so user edits to the tree survive
// restarts.
func (s *Store) EnsureDefaultTaxonomy(ctx context.Context) error {
	ctx = ensureContext(ctx)

	if err := s.ensureUnassignedFolder(ctx); err != nil {
		return err
	}

	var count int64
	if err := s.db.QueryRowContext(
		ctx,
		`SELECT COUNT(*) FROM folders WHERE is_system = 1 AND name != ?`,
		UnassignedFolderName,
	).Scan(&count); err != nil {
		return fmt.Errorf("count system folders: %w", err)
	}
	if count > 0 {
		return nil
	}

	byPath := make(map[string]int64, len(defaultTaxonomy))
	for _, entry := range defaultTaxonomy {
		var parentID *int64
		if entry.parent != "" {
			id, ok := byPath[entry.parent]
			if !ok {
				return fmt.Errorf("default taxonomy parent %q not created before %q", entry.parent, entry.path)
			}
			parentID = &id
		}
		segments := strings.Split(entry.path, "/")
		folder, err := s.CreateFolder(ctx, NewFolder{
			Name:        segments[len(segments)-1],
			Description: entry.description,
			ParentID:    parentID,
			IsSystem:    true,
		})
		if err != nil {
			return fmt.Errorf("seed folder %q: %w", entry.path, err)
		}
		byPath[entry.path] = folder.ID
	}
	return nil
}

func (s *Store) ensureUnassignedFolder(ctx context.Context) error {
	var exists bool
	if err := s.db.QueryRowContext(
		ctx,
		`SELECT EXISTS(SELECT 1 FROM folders WHERE name = ? AND parent_id IS NULL)`,
		UnassignedFolderName,
	).Scan(&exists); err != nil {
		return fmt.Errorf("check unassigned folder: %w", err)
	}
	if exists {
		return nil
	}
	_, err := s.CreateFolder(ctx, NewFolder{
		Name:        UnassignedFolderName,
		Description: "Tracks not filed in any folder",
		Order:       -1,
		IsSystem:    true,
		Metadata:    `{"special":"unassigned"}`,
	})
	if err != nil {
		return fmt.Errorf("create unassigned folder: %w", err)
	}
	return nil
}
