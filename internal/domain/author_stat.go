package domain

import "encoding/json"

// AuthorStat holds one author's contribution within a repository and scope
type AuthorStat struct {
	Added   int
	Author  string
	Commits int
	Deleted int
}

// TotalChanges is always Added + Deleted
func (a AuthorStat) TotalChanges() int {
	return a.Added + a.Deleted
}

// NetLines is Added - Deleted
func (a AuthorStat) NetLines() int {
	return a.Added - a.Deleted
}

type authorStatJSON struct {
	Author       string `json:"author"`
	Added        int    `json:"added"`
	Deleted      int    `json:"deleted"`
	TotalChanges int    `json:"totalChanges"`
	Commits      int    `json:"commits"`
}

// MarshalJSON emits totalChanges alongside the stored counters
func (a AuthorStat) MarshalJSON() ([]byte, error) {
	return json.Marshal(authorStatJSON{
		Author:       a.Author,
		Added:        a.Added,
		Deleted:      a.Deleted,
		TotalChanges: a.TotalChanges(),
		Commits:      a.Commits,
	})
}

// UnmarshalJSON ignores totalChanges since it is derived
func (a *AuthorStat) UnmarshalJSON(data []byte) error {
	var raw authorStatJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*a = AuthorStat{
		Author:  raw.Author,
		Added:   raw.Added,
		Deleted: raw.Deleted,
		Commits: raw.Commits,
	}
	return nil
}
