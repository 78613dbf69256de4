package engine

import (
	"sort"

	"github.com/Kishore8899/badminton-tournament-scorer/models"
)

// ComputeLeaderboard derives standings from completed matches. It is a pure
// projection: no cached state, identical inputs always produce the identical
// ordered slice.
//
// Every team gets a row, annotated with its group when it has one. Only
// completed matches are folded in: both sides gain a played count and their
// points for/against; the winner side gains a win, the other a loss. A
// completed match with a missing or unrecognized winner still counts toward
// played and points but not wins/losses — the lifecycle prevents that state,
// this is belt and braces over imported data.
func ComputeLeaderboard(teams []models.Team, groups []models.Group, matches []models.Match) []models.LeaderboardEntry {
	teamGroup := make(map[string]models.Group, len(teams))
	for _, g := range groups {
		for _, t := range g.Teams {
			teamGroup[t.ID] = g
		}
	}

	index := make(map[string]int, len(teams))
	entries := make([]models.LeaderboardEntry, 0, len(teams))
	for _, team := range teams {
		entry := models.LeaderboardEntry{
			TeamID:   team.ID,
			TeamName: team.Name,
			Category: team.Category,
		}
		if g, ok := teamGroup[team.ID]; ok {
			id, name := g.ID, g.Name
			entry.GroupID = &id
			entry.GroupName = &name
		}
		index[team.ID] = len(entries)
		entries = append(entries, entry)
	}

	for _, m := range matches {
		if m.Status != models.MatchCompleted {
			continue
		}
		ai, aok := index[m.TeamA.ID]
		bi, bok := index[m.TeamB.ID]
		if !aok || !bok {
			continue
		}
		a, b := &entries[ai], &entries[bi]
		a.Played++
		b.Played++
		a.PointsFor += m.Score.TeamA
		a.PointsAgainst += m.Score.TeamB
		b.PointsFor += m.Score.TeamB
		b.PointsAgainst += m.Score.TeamA
		if m.Winner != nil {
			switch m.Winner.ID {
			case m.TeamA.ID:
				a.Wins++
				b.Losses++
			case m.TeamB.ID:
				b.Wins++
				a.Losses++
			}
		}
	}

	for i := range entries {
		entries[i].PointDifference = entries[i].PointsFor - entries[i].PointsAgainst
	}

	// Strict total order: wins desc, point difference desc, points for desc,
	// then team name asc as the deterministic final tie-break.
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.Wins != b.Wins {
			return a.Wins > b.Wins
		}
		if a.PointDifference != b.PointDifference {
			return a.PointDifference > b.PointDifference
		}
		if a.PointsFor != b.PointsFor {
			return a.PointsFor > b.PointsFor
		}
		return a.TeamName < b.TeamName
	})

	return entries
}

// FilterByGroup selects entries belonging to the given group id.
func FilterByGroup(entries []models.LeaderboardEntry, groupID string) []models.LeaderboardEntry {
	out := make([]models.LeaderboardEntry, 0, len(entries))
	for _, e := range entries {
		if e.GroupID != nil && *e.GroupID == groupID {
			out = append(out, e)
		}
	}
	return out
}

// FilterByCategory selects entries of the given category.
func FilterByCategory(entries []models.LeaderboardEntry, category models.Category) []models.LeaderboardEntry {
	out := make([]models.LeaderboardEntry, 0, len(entries))
	for _, e := range entries {
		if e.Category == category {
			out = append(out, e)
		}
	}
	return out
}
