package usecase

import (
	"github.com/m-mizutani/issuefork/pkg/domain/interfaces"
	"github.com/m-mizutani/issuefork/pkg/domain/model"
)

type NoOpDisplay struct{}

func NewNoOpDisplay() interfaces.Display {
	return &NoOpDisplay{}
}

func (d *NoOpDisplay) StartRepository(index, total int, id string)     {}
func (d *NoOpDisplay) ShowOwned(repo model.Repository)                 {}
func (d *NoOpDisplay) ShowFork(fork model.Repository, created bool)    {}
func (d *NoOpDisplay) ShowIssuesFound(count int)                       {}
func (d *NoOpDisplay) ShowIssueCopied(src *model.Issue, number int)    {}
func (d *NoOpDisplay) ShowIssueFailed(src *model.Issue, err error)     {}
func (d *NoOpDisplay) ShowWarning(msg string, err error)               {}
func (d *NoOpDisplay) FinishRepository(result *model.RepositoryResult) {}
func (d *NoOpDisplay) ShowSummary(summary *model.Summary)              {}
