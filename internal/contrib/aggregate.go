package contrib

import "sort"

// maxRanked caps the leaderboard returned by TopContributors.
const maxRanked = 5

// CommitRecord is the slice of an upstream commit this service consumes.
type CommitRecord struct {
	AuthorName  string
	AuthorEmail string
}

// Contributor is a unique committer, keyed by email.
type Contributor struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// RankedContributor is a committer with a total commit count, keyed by name.
type RankedContributor struct {
	Name    string `json:"name"`
	Commits int    `json:"commits"`
}

// UniqueContributors deduplicates records by author email, preserving the
// order in which each distinct email first appeared. When the same email
// shows up under different names, the last name seen wins.
func UniqueContributors(records []CommitRecord) []Contributor {
	byEmail := make(map[string]int, len(records))
	out := []Contributor{}
	for _, r := range records {
		if i, seen := byEmail[r.AuthorEmail]; seen {
			out[i].Name = r.AuthorName
			continue
		}
		byEmail[r.AuthorEmail] = len(out)
		out = append(out, Contributor{Name: r.AuthorName, Email: r.AuthorEmail})
	}
	return out
}

// TopContributors counts commits per author name and returns at most five
// authors ordered by count descending. Authors with equal counts keep their
// first-occurrence order.
func TopContributors(records []CommitRecord) []RankedContributor {
	byName := make(map[string]int, len(records))
	out := []RankedContributor{}
	for _, r := range records {
		if i, seen := byName[r.AuthorName]; seen {
			out[i].Commits++
			continue
		}
		byName[r.AuthorName] = len(out)
		out = append(out, RankedContributor{Name: r.AuthorName, Commits: 1})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Commits > out[j].Commits
	})
	if len(out) > maxRanked {
		out = out[:maxRanked]
	}
	return out
}
