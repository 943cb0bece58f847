package interfaces

import "github.com/m-mizutani/issuefork/pkg/domain/model"

type Display interface {
	StartRepository(index, total int, id string)
	ShowOwned(repo model.Repository)
	ShowFork(fork model.Repository, created bool)
	ShowIssuesFound(count int)
	ShowIssueCopied(src *model.Issue, number int)
	ShowIssueFailed(src *model.Issue, err error)
	ShowWarning(msg string, err error)
	FinishRepository(result *model.RepositoryResult)
	ShowSummary(summary *model.Summary)
}
