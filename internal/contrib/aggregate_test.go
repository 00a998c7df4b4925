package contrib

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func rec(name, email string) CommitRecord {
	return CommitRecord{AuthorName: name, AuthorEmail: email}
}

func TestUniqueContributors(t *testing.T) {
	tests := []struct {
		name    string
		records []CommitRecord
		want    []Contributor
	}{
		{
			name:    "empty input",
			records: nil,
			want:    []Contributor{},
		},
		{
			name:    "single record",
			records: []CommitRecord{rec("Ada", "ada@example.com")},
			want:    []Contributor{{Name: "Ada", Email: "ada@example.com"}},
		},
		{
			name: "duplicates removed, first-seen order kept",
			records: []CommitRecord{
				rec("A", "a@x"),
				rec("B", "b@x"),
				rec("B", "b@x"),
			},
			want: []Contributor{
				{Name: "A", Email: "a@x"},
				{Name: "B", Email: "b@x"},
			},
		},
		{
			name: "same email under two names, last name wins",
			records: []CommitRecord{
				rec("Ada L", "ada@example.com"),
				rec("Grace", "grace@example.com"),
				rec("Ada Lovelace", "ada@example.com"),
			},
			want: []Contributor{
				{Name: "Ada Lovelace", Email: "ada@example.com"},
				{Name: "Grace", Email: "grace@example.com"},
			},
		},
		{
			name: "email comparison is exact and case sensitive",
			records: []CommitRecord{
				rec("Ada", "Ada@example.com"),
				rec("Ada", "ada@example.com"),
			},
			want: []Contributor{
				{Name: "Ada", Email: "Ada@example.com"},
				{Name: "Ada", Email: "ada@example.com"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UniqueContributors(tt.records))
		})
	}
}

func TestTopContributors(t *testing.T) {
	tests := []struct {
		name    string
		records []CommitRecord
		want    []RankedContributor
	}{
		{
			name:    "empty input",
			records: nil,
			want:    []RankedContributor{},
		},
		{
			name: "counts descending",
			records: []CommitRecord{
				rec("A", "a@x"),
				rec("B", "b@x"),
				rec("B", "b@x"),
			},
			want: []RankedContributor{
				{Name: "B", Commits: 2},
				{Name: "A", Commits: 1},
			},
		},
		{
			name: "ties keep first-occurrence order",
			records: []CommitRecord{
				rec("C", "c@x"),
				rec("A", "a@x"),
				rec("B", "b@x"),
				rec("A", "a@x"),
				rec("B", "b@x"),
			},
			want: []RankedContributor{
				{Name: "A", Commits: 2},
				{Name: "B", Commits: 2},
				{Name: "C", Commits: 1},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TopContributors(tt.records))
		})
	}
}

func TestTopContributorsTruncatesToFive(t *testing.T) {
	var records []CommitRecord
	names := []string{"g", "f", "e", "d", "c", "b", "a"}
	for i, name := range names {
		// counts 7,6,5,4,3,2,1 in descending order of appearance
		for j := 0; j < len(names)-i; j++ {
			records = append(records, rec(name, name+"@x"))
		}
	}

	got := TopContributors(records)
	want := []RankedContributor{
		{Name: "g", Commits: 7},
		{Name: "f", Commits: 6},
		{Name: "e", Commits: 5},
		{Name: "d", Commits: 4},
		{Name: "c", Commits: 3},
	}
	assert.Equal(t, want, got)
}
