package domain

import "strings"

const (
	// IrisArgPrefix selects a source artifact from the session's positional arguments.
	IrisArgPrefix = "--iris="

	githubRepo = "github"
)

// ResolveSourceArtifact determines the upstream ref to check out, if any.
//
// The value comes from envValue unless a "--iris=<repo>:<ref>" positional argument
// is present, in which case the first well-formed one wins. Only the "github"
// repo is recognized; any other or malformed value yields ok == false.
func ResolveSourceArtifact(envValue string, posargs []string) (ref string, ok bool) {
	value := envValue
	for _, arg := range posargs {
		if !strings.HasPrefix(arg, IrisArgPrefix) {
			continue
		}
		parts := strings.Split(arg, "=")
		if len(parts) == 2 {
			value = strings.TrimSpace(parts[1])
			break
		}
	}

	if value == "" {
		return "", false
	}

	parts := strings.Split(strings.TrimSpace(value), ":")
	if len(parts) != 2 {
		return "", false
	}

	repo, artifact := parts[0], parts[1]
	if strings.HasPrefix(repo, "'") || strings.HasPrefix(repo, `"`) {
		repo = repo[1:]
	}
	if !strings.EqualFold(repo, githubRepo) {
		return "", false
	}

	if strings.HasSuffix(artifact, "'") || strings.HasSuffix(artifact, `"`) {
		artifact = artifact[:len(artifact)-1]
	}
	if artifact == "" {
		return "", false
	}
	return artifact, true
}
