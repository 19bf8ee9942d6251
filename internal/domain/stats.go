package domain

import "time"

// ProblemScope identifies which pipeline step a recovered failure belongs to.
type ProblemScope string

const (
	ScopeCollection ProblemScope = "collection"
	ScopeContent    ProblemScope = "content"
	ScopeMedia      ProblemScope = "media"
	ScopeRelation   ProblemScope = "relation"
	ScopePage       ProblemScope = "page"
)

// Problem records one recovered per-record failure. The run continues past
// these; they exist so a run's degradations are inspectable instead of only
// logged.
type Problem struct {
	Scope    ProblemScope
	RecordID string
	Err      error
}

// FetchStats holds statistics about one pipeline run.
type FetchStats struct {
	BlogPosts         int
	Recipes           int
	Ingredients       int
	RecipeIngredients int
	ImagesDownloaded  int
	Problems          []Problem
	Duration          time.Duration
}

// AddProblem appends a recovered failure to the run's record.
func (s *FetchStats) AddProblem(scope ProblemScope, recordID string, err error) {
	s.Problems = append(s.Problems, Problem{Scope: scope, RecordID: recordID, Err: err})
}
