package gitrepo

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-git/go-git/v5/plumbing/transport"
	githttp "github.com/go-git/go-git/v5/plumbing/transport/http"
)

const (
	providerGitHub      = "github"
	providerAzureDevOps = "azuredevops"
	providerGitLab      = "gitlab"
	providerUnknown     = ""
)

// detectProvider guesses the hosting provider from a remote URL.
func detectProvider(rawURL string) string {
	switch {
	case strings.Contains(rawURL, "dev.azure.com"), strings.Contains(rawURL, "visualstudio.com"):
		return providerAzureDevOps
	case strings.Contains(rawURL, "github.com"):
		return providerGitHub
	case strings.Contains(rawURL, "gitlab"):
		return providerGitLab
	default:
		return providerUnknown
	}
}

// isHTTPRemote reports whether the remote is reached over HTTP(S).
func isHTTPRemote(rawURL string) bool {
	return strings.HasPrefix(rawURL, "https://") || strings.HasPrefix(rawURL, "http://")
}

// resolveAuth returns basic auth for HTTP remotes when a token is available in
// the environment. SSH and local remotes return nil, leaving go-git to use the
// SSH agent or no auth at all.
func resolveAuth(rawURL string) transport.AuthMethod {
	if !isHTTPRemote(rawURL) {
		return nil
	}

	provider := detectProvider(rawURL)
	token := resolveTokenFromEnv(provider)
	if token == "" {
		return nil
	}

	return &githttp.BasicAuth{
		Username: tokenUsername(provider),
		Password: token,
	}
}

func resolveTokenFromEnv(providerType string) string {
	switch providerType {
	case providerGitHub:
		if t := os.Getenv("GITHUB_TOKEN"); t != "" {
			return t
		}
		return os.Getenv("GH_TOKEN")
	case providerAzureDevOps:
		if t := os.Getenv("AZURE_DEVOPS_EXT_PAT"); t != "" {
			return t
		}
		return os.Getenv("SYSTEM_ACCESSTOKEN")
	case providerGitLab:
		if t := os.Getenv("GITLAB_TOKEN"); t != "" {
			return t
		}
		return os.Getenv("GL_TOKEN")
	default:
		return os.Getenv("GIT_TOKEN")
	}
}

func tokenUsername(providerType string) string {
	switch providerType {
	case providerGitHub:
		return "x-access-token"
	case providerGitLab:
		return "oauth2"
	case providerAzureDevOps:
		return "pat"
	default:
		return "git"
	}
}

func tokenEnvHint(providerType string) string {
	switch providerType {
	case providerGitHub:
		return "GITHUB_TOKEN or GH_TOKEN"
	case providerAzureDevOps:
		return "AZURE_DEVOPS_EXT_PAT or SYSTEM_ACCESSTOKEN"
	case providerGitLab:
		return "GITLAB_TOKEN or GL_TOKEN"
	default:
		return "GIT_TOKEN"
	}
}

// authHint explains which variable to set when an HTTP push is rejected.
func authHint(rawURL string) string {
	if !isHTTPRemote(rawURL) {
		return ""
	}
	return fmt.Sprintf(" (set %s to authenticate)", tokenEnvHint(detectProvider(rawURL)))
}
