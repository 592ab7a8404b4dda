package tracker

import (
	"strings"
	"unicode/utf8"

	"github.com/blackwell-systems/cmdtrack/internal/store"
)

// Keyword sets for the categorical features. Matched against whole
// command tokens, case-insensitively.
var (
	fileOpCommands = map[string]bool{
		"ls": true, "cat": true, "grep": true, "find": true,
		"touch": true, "mkdir": true, "rm": true,
	}
	systemOpCommands = map[string]bool{
		"ps": true, "top": true, "kill": true, "systemctl": true, "service": true,
	}
	networkOpCommands = map[string]bool{
		"curl": true, "wget": true, "ping": true, "ssh": true, "scp": true,
	}
	packageOpCommands = map[string]bool{
		"apt": true, "yum": true, "brew": true, "pip": true, "npm": true,
	}
)

// ExtractFeatures derives the feature vector for a command and the request
// that produced it. It is deterministic and side-effect-free: the same
// inputs always yield the same vector, whether called at record creation
// or at similarity-query time.
func ExtractFeatures(command, request string) store.FeatureVector {
	tokens := strings.Fields(command)
	commandType := ""
	if len(tokens) > 0 {
		commandType = tokens[0]
	}

	return store.FeatureVector{
		CommandLength:    utf8.RuneCountInString(command),
		WordCount:        len(tokens),
		HasPipes:         strings.Contains(command, "|"),
		HasRedirects:     strings.ContainsAny(command, "><"),
		HasSudo:          strings.HasPrefix(strings.TrimSpace(command), "sudo"),
		HasFlags:         strings.Contains(command, "-"),
		CommandType:      commandType,
		RequestLength:    utf8.RuneCountInString(request),
		RequestWordCount: len(strings.Fields(request)),
		FileOps:          anyToken(tokens, fileOpCommands),
		SystemOps:        anyToken(tokens, systemOpCommands),
		NetworkOps:       anyToken(tokens, networkOpCommands),
		PackageOps:       anyToken(tokens, packageOpCommands),
	}
}

func anyToken(tokens []string, set map[string]bool) bool {
	for _, tok := range tokens {
		if set[strings.ToLower(tok)] {
			return true
		}
	}
	return false
}
