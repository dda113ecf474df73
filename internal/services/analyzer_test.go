package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"codetally/internal/domain"
	portsmocks "codetally/internal/ports/mocks"
)

func TestAnalyze(t *testing.T) {
	history := portsmocks.NewMockHistoryReader(t)
	publisher, events := recordPublisher(t)
	ref := domain.NewRepositoryRef("/src/r1")
	scope := domain.AllBranches()

	history.EXPECT().ListBranches(mock.Anything, "/src/r1").Return([]string{"main", "dev"}, nil)
	history.EXPECT().ListAuthors(mock.Anything, "/src/r1", scope).Return([]string{"alice", "bob"}, nil)
	history.EXPECT().AuthorStats(mock.Anything, "/src/r1", "alice", scope).
		Return(domain.AuthorStat{Author: "alice", Added: 50, Deleted: 10, Commits: 5}, nil)
	history.EXPECT().AuthorStats(mock.Anything, "/src/r1", "bob", scope).
		Return(domain.AuthorStat{Author: "bob", Added: 5, Deleted: 0, Commits: 1}, nil)

	report := NewAnalyzerService(history, publisher).Analyze(context.Background(), ref, scope, "s1")

	assert.Equal(t, ref, report.Ref)
	assert.Equal(t, []string{"main", "dev"}, report.Branches)
	require.Len(t, report.Contributors, 2)
	assert.Equal(t, "alice", report.Contributors[0].Author)
	assert.Equal(t, 60, report.Contributors[0].TotalChanges())
	assert.Equal(t, "bob", report.Contributors[1].Author)
	assert.Equal(t, 5, report.Contributors[1].TotalChanges())

	info := messagesWithSeverity(*events, domain.SeverityInfo)
	assert.Contains(t, info, "Analyzing repository: r1 (all branches)")
	assert.Contains(t, info, "Found 2 contributors")
	assert.Contains(t, info, "Processing [1/2]: alice")
	assert.Contains(t, info, "Processing [2/2]: bob")
	assert.Contains(t, info, "Repository done: 65 line changes, 6 commits")
	assert.Empty(t, messagesWithSeverity(*events, domain.SeverityWarning))
}

func TestAnalyzeSortsByTotalChanges(t *testing.T) {
	history := portsmocks.NewMockHistoryReader(t)
	publisher, _ := recordPublisher(t)
	scope := domain.SingleBranch("main")

	history.EXPECT().ListBranches(mock.Anything, mock.Anything).Return([]string{"main"}, nil)
	history.EXPECT().ListAuthors(mock.Anything, mock.Anything, scope).Return([]string{"amy", "ben", "cat"}, nil)
	history.EXPECT().AuthorStats(mock.Anything, mock.Anything, "amy", scope).Return(domain.AuthorStat{Added: 1}, nil)
	history.EXPECT().AuthorStats(mock.Anything, mock.Anything, "ben", scope).Return(domain.AuthorStat{Added: 9}, nil)
	history.EXPECT().AuthorStats(mock.Anything, mock.Anything, "cat", scope).Return(domain.AuthorStat{Deleted: 1}, nil)

	report := NewAnalyzerService(history, publisher).Analyze(context.Background(), domain.NewRepositoryRef("/src/r"), scope, "")

	var order []string
	for _, c := range report.Contributors {
		order = append(order, c.Author)
	}
	assert.Equal(t, []string{"ben", "amy", "cat"}, order)
	assert.Equal(t, "main", report.Scope.Display())
}

func TestAnalyzeEmptyRepository(t *testing.T) {
	history := portsmocks.NewMockHistoryReader(t)
	publisher, events := recordPublisher(t)

	history.EXPECT().ListBranches(mock.Anything, "/src/empty").Return([]string{}, nil)
	history.EXPECT().ListAuthors(mock.Anything, "/src/empty", mock.Anything).Return([]string{}, nil)

	report := NewAnalyzerService(history, publisher).Analyze(context.Background(), domain.NewRepositoryRef("/src/empty"), domain.AllBranches(), "s1")

	assert.Empty(t, report.Contributors)
	assert.Empty(t, report.Branches)
	assert.Contains(t, messagesWithSeverity(*events, domain.SeverityInfo), "Found 0 contributors")
}

func TestAnalyzeAbsorbsEnumerationFailures(t *testing.T) {
	history := portsmocks.NewMockHistoryReader(t)
	publisher, events := recordPublisher(t)

	history.EXPECT().ListBranches(mock.Anything, "/src/broken").Return(nil, errors.New("not a git repository"))
	history.EXPECT().ListAuthors(mock.Anything, "/src/broken", mock.Anything).Return(nil, errors.New("not a git repository"))

	report := NewAnalyzerService(history, publisher).Analyze(context.Background(), domain.NewRepositoryRef("/src/broken"), domain.AllBranches(), "s1")

	assert.Equal(t, []string{}, report.Branches)
	assert.Empty(t, report.Contributors)
	assert.Len(t, messagesWithSeverity(*events, domain.SeverityWarning), 2)
}

func TestAnalyzeZeroesFailedAuthor(t *testing.T) {
	history := portsmocks.NewMockHistoryReader(t)
	publisher, events := recordPublisher(t)
	scope := domain.AllBranches()

	history.EXPECT().ListBranches(mock.Anything, mock.Anything).Return([]string{"main"}, nil)
	history.EXPECT().ListAuthors(mock.Anything, mock.Anything, scope).Return([]string{"alice", "bob"}, nil)
	history.EXPECT().AuthorStats(mock.Anything, mock.Anything, "alice", scope).
		Return(domain.AuthorStat{Author: "alice", Added: 99, Commits: 2}, errors.New("output limit"))
	history.EXPECT().AuthorStats(mock.Anything, mock.Anything, "bob", scope).
		Return(domain.AuthorStat{Author: "bob", Added: 3, Commits: 1}, nil)

	report := NewAnalyzerService(history, publisher).Analyze(context.Background(), domain.NewRepositoryRef("/src/r"), scope, "s1")

	require.Len(t, report.Contributors, 2)
	assert.Equal(t, domain.AuthorStat{Author: "bob", Added: 3, Commits: 1}, report.Contributors[0])
	assert.Equal(t, domain.AuthorStat{Author: "alice"}, report.Contributors[1])
	assert.Len(t, messagesWithSeverity(*events, domain.SeverityWarning), 1)
}

func TestAnalyzeDropsDuplicateAuthors(t *testing.T) {
	history := portsmocks.NewMockHistoryReader(t)
	publisher, _ := recordPublisher(t)
	scope := domain.AllBranches()

	history.EXPECT().ListBranches(mock.Anything, mock.Anything).Return(nil, nil)
	history.EXPECT().ListAuthors(mock.Anything, mock.Anything, scope).Return([]string{"alice", "alice"}, nil)
	history.EXPECT().AuthorStats(mock.Anything, mock.Anything, "alice", scope).
		Return(domain.AuthorStat{Author: "alice", Added: 1}, nil).Once()

	report := NewAnalyzerService(history, publisher).Analyze(context.Background(), domain.NewRepositoryRef("/src/r"), scope, "s1")

	assert.Len(t, report.Contributors, 1)
}
