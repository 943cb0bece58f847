package domain

import "github.com/m-mizutani/goerr/v2"

var (
	ErrAuthentication = goerr.New("authentication failed", goerr.ID("authentication"))
	ErrProviderCLI    = goerr.New("gh CLI is not available", goerr.ID("provider_cli"))
	ErrAPIRequest     = goerr.New("API request failed", goerr.ID("api_request"))
	ErrConfiguration  = goerr.New("configuration error", goerr.ID("configuration"))
	ErrRepository     = goerr.New("repository error", goerr.ID("repository"))
	ErrFork           = goerr.New("fork failed", goerr.ID("fork"))
	ErrLabelExists    = goerr.New("label already exists", goerr.ID("label_exists"))
	ErrIssueCreation  = goerr.New("issue creation failed", goerr.ID("issue_creation"))
	ErrSnapshot       = goerr.New("issue snapshot error", goerr.ID("snapshot"))
)
