package safety

import "testing"

func TestValidateURL(t *testing.T) {
	cases := []struct {
		name     string
		url      string
		safe     bool
		category Category
	}{
		{"https site", "https://example.com/page", true, ""},
		{"http site", "http://example.com", true, ""},
		{"empty", "", false, ""},
		{"file scheme", "file:///etc/passwd", false, CategoryPathTraversal},
		{"javascript scheme", "javascript:alert(1)", false, CategoryInjection},
		{"javascript scheme mixed case", "JavaScript:alert(1)", false, CategoryInjection},
		{"data scheme", "data:text/html;base64,PHNjcmlwdD4=", false, CategoryInjection},
		{"vbscript scheme", "vbscript:msgbox(1)", false, CategoryInjection},
		{"localhost", "http://localhost:8080/admin", false, CategoryNetworkExfiltration},
		{"loopback", "https://127.0.0.1/", false, CategoryNetworkExfiltration},
		{"ipv6 loopback", "http://[::1]:3000", false, CategoryNetworkExfiltration},
		{"rfc1918 192.168", "http://192.168.1.1/router", false, CategoryNetworkExfiltration},
		{"rfc1918 10.x", "http://10.0.0.5/internal", false, CategoryNetworkExfiltration},
		{"rfc1918 172.16", "http://172.16.0.1/", false, CategoryNetworkExfiltration},
		{"not rfc1918 172.32", "http://172.32.0.1/", true, ""},
		{"public ip", "http://8.8.8.8/", true, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			verdict := ValidateURL(tc.url)
			if verdict.Safe != tc.safe {
				t.Fatalf("ValidateURL(%q).Safe = %v, want %v (reason: %s)", tc.url, verdict.Safe, tc.safe, verdict.Reason)
			}
			if !tc.safe && verdict.Category != tc.category {
				t.Fatalf("Category = %s, want %s", verdict.Category, tc.category)
			}
			if !tc.safe && verdict.Field != "url" {
				t.Fatalf("Field = %q, want %q", verdict.Field, "url")
			}
		})
	}
}

func TestValidateFilePath(t *testing.T) {
	cases := []struct {
		name string
		path string
		safe bool
	}{
		{"relative file", "docs/readme.txt", true},
		{"nested relative", "project/src/main.go", true},
		{"empty", "", false},
		{"parent traversal", "../secrets.txt", false},
		{"embedded traversal", "logs/../../etc/passwd", false},
		{"absolute path", "/var/data/file", false},
		{"home anchored", "~/notes.txt", false},
		{"etc fragment", "backup/etc/shadow", false},
		{"proc fragment", "mirror/proc/self/environ", false},
		{"system32", `C:\Windows\System32\cmd.exe`, false},
		{"ssh keys", "home/user/.ssh/id_rsa", false},
		{"aws credentials", "home/user/.aws/credentials", false},
		{"git internals", "repo/.git/config", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			verdict := ValidateFilePath(tc.path)
			if verdict.Safe != tc.safe {
				t.Fatalf("ValidateFilePath(%q).Safe = %v, want %v (reason: %s)", tc.path, verdict.Safe, tc.safe, verdict.Reason)
			}
			if !tc.safe && verdict.Field != "path" {
				t.Fatalf("Field = %q, want %q", verdict.Field, "path")
			}
		})
	}
}
