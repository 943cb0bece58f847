package model

import (
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

type Repository struct {
	Owner string
	Name  string
}

func (r Repository) FullName() string {
	return r.Owner + "/" + r.Name
}

// ForkFor returns the reference of r's fork under the given user.
func (r Repository) ForkFor(user string) Repository {
	return Repository{Owner: user, Name: r.Name}
}

// OwnedBy reports whether r already belongs to user. GitHub logins are case-insensitive.
func (r Repository) OwnedBy(user string) bool {
	return strings.EqualFold(r.Owner, user)
}

// ParseRepository parses an "owner/name" identifier.
func ParseRepository(id string) (Repository, error) {
	parts := strings.Split(strings.TrimSpace(id), "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return Repository{}, goerr.New("repository identifier must be in owner/name form: " + id)
	}
	return Repository{Owner: parts[0], Name: parts[1]}, nil
}

// DefaultRepositories is the built-in list processed when no config overrides it.
// They are GitHub's public practice repositories, safe to fork and copy from.
var DefaultRepositories = []string{
	"octocat/Spoon-Knife",
	"octocat/Hello-World",
	"octocat/git-consortium",
}
