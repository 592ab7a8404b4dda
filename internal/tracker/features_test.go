package tracker

import "testing"

func TestExtractFeatures_Basic(t *testing.T) {
	fv := ExtractFeatures("ls -la", "list all files")

	if fv.CommandLength != 6 {
		t.Errorf("CommandLength = %d, want 6", fv.CommandLength)
	}
	if fv.WordCount != 2 {
		t.Errorf("WordCount = %d, want 2", fv.WordCount)
	}
	if fv.CommandType != "ls" {
		t.Errorf("CommandType = %q, want %q", fv.CommandType, "ls")
	}
	if !fv.HasFlags {
		t.Error("expected HasFlags for 'ls -la'")
	}
	if fv.HasPipes || fv.HasRedirects || fv.HasSudo {
		t.Error("unexpected pipe/redirect/sudo flags")
	}
	if !fv.FileOps {
		t.Error("expected FileOps for 'ls'")
	}
	if fv.RequestLength != 14 {
		t.Errorf("RequestLength = %d, want 14", fv.RequestLength)
	}
	if fv.RequestWordCount != 3 {
		t.Errorf("RequestWordCount = %d, want 3", fv.RequestWordCount)
	}
}

func TestExtractFeatures_EmptyCommand(t *testing.T) {
	fv := ExtractFeatures("", "do something")
	if fv.CommandType != "" {
		t.Errorf("CommandType = %q, want empty", fv.CommandType)
	}
	if fv.CommandLength != 0 || fv.WordCount != 0 {
		t.Error("expected zero counts for empty command")
	}
}

func TestExtractFeatures_Structure(t *testing.T) {
	tests := []struct {
		name     string
		command  string
		pipes    bool
		redirect bool
		sudo     bool
		flags    bool
	}{
		{"pipeline", "ps aux | grep nginx", true, false, false, false},
		{"redirect out", "echo hi > file", false, true, false, false},
		{"redirect in", "sort < names.txt", false, true, false, false},
		{"sudo", "sudo systemctl restart nginx", false, false, true, false},
		{"sudo after space", "  sudo reboot", false, false, true, false},
		{"flags", "tar -xzf archive.tgz", false, false, false, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			fv := ExtractFeatures(tc.command, "")
			if fv.HasPipes != tc.pipes {
				t.Errorf("HasPipes = %v, want %v", fv.HasPipes, tc.pipes)
			}
			if fv.HasRedirects != tc.redirect {
				t.Errorf("HasRedirects = %v, want %v", fv.HasRedirects, tc.redirect)
			}
			if fv.HasSudo != tc.sudo {
				t.Errorf("HasSudo = %v, want %v", fv.HasSudo, tc.sudo)
			}
			if fv.HasFlags != tc.flags {
				t.Errorf("HasFlags = %v, want %v", fv.HasFlags, tc.flags)
			}
		})
	}
}

func TestExtractFeatures_Categories(t *testing.T) {
	tests := []struct {
		name    string
		command string
		file    bool
		system  bool
		network bool
		pkg     bool
	}{
		{"file ops", "find . -name '*.log'", true, false, false, false},
		{"system ops", "kill -9 1234", false, true, false, false},
		{"network ops", "curl https://example.com", false, false, true, false},
		{"package ops", "brew install jq", false, false, false, true},
		{"category anywhere in command", "ps aux | grep nginx", true, true, false, false},
		{"case insensitive", "CURL https://example.com", false, false, true, false},
		{"no substring matches", "lsof -i :8080", false, false, false, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			fv := ExtractFeatures(tc.command, "")
			if fv.FileOps != tc.file {
				t.Errorf("FileOps = %v, want %v", fv.FileOps, tc.file)
			}
			if fv.SystemOps != tc.system {
				t.Errorf("SystemOps = %v, want %v", fv.SystemOps, tc.system)
			}
			if fv.NetworkOps != tc.network {
				t.Errorf("NetworkOps = %v, want %v", fv.NetworkOps, tc.network)
			}
			if fv.PackageOps != tc.pkg {
				t.Errorf("PackageOps = %v, want %v", fv.PackageOps, tc.pkg)
			}
		})
	}
}

func TestExtractFeatures_Deterministic(t *testing.T) {
	a := ExtractFeatures("sudo apt install curl", "install curl for me please")
	b := ExtractFeatures("sudo apt install curl", "install curl for me please")
	if a != b {
		t.Error("feature extraction must be deterministic")
	}
}
