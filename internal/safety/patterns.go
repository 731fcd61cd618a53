package safety

// builtinPatterns returns the full built-in threat pattern set. The
// collection is the union of the battle-tested shell, credential, network,
// injection and traversal matchers that accumulated across earlier safety
// checker revisions, grouped under one category enum.
func builtinPatterns() []Pattern {
	return []Pattern{
		// Filesystem destruction.
		{Category: CategoryDestructiveFilesystem, Expr: `(?i)\brm\s+-[a-z]*r[a-z]*f[a-z]*\s+/`, Description: "recursive force removal of a root path"},
		{Category: CategoryDestructiveFilesystem, Expr: `(?i)\brm\s+(-\w+\s+)*--no-preserve-root\b`, Description: "rm with root preservation disabled"},
		{Category: CategoryDestructiveFilesystem, Expr: `(?i)\bdel\s+/f\s+/s\s+/q\b`, Description: "forced recursive Windows delete"},
		{Category: CategoryDestructiveFilesystem, Expr: `(?i)\bdel\b[^;|&]*(system32|c:\\+windows)`, Description: "deletion targeting Windows system files"},
		{Category: CategoryDestructiveFilesystem, Expr: `(?i)\brd\s+/s\s+/q\s+[a-z]:\\`, Description: "recursive Windows directory removal"},
		{Category: CategoryDestructiveFilesystem, Expr: `(?i)\bformat\s+[a-z]:`, Description: "drive format command"},
		{Category: CategoryDestructiveFilesystem, Expr: `(?i)\bdd\s+if=/dev/(zero|random|urandom)\s+of=/dev/`, Description: "disk overwrite via dd"},
		{Category: CategoryDestructiveFilesystem, Expr: `(?i)\bmkfs(\.\w+)?\s`, Description: "filesystem format command"},
		{Category: CategoryDestructiveFilesystem, Expr: `>{1,2}\s*/dev/(sd|hd|nvme)`, Description: "redirect onto a raw disk device"},
		{Category: CategoryDestructiveFilesystem, Expr: `:\s*\(\s*\)\s*\{.*:\s*\|`, Description: "fork bomb"},
		{Category: CategoryDestructiveFilesystem, Expr: `(?i)\bkill\s+-9\s+-1\b`, Description: "kill all processes"},
		{Category: CategoryDestructiveFilesystem, Expr: `(?i)\bgit\s+push\b[^;|&]*--force`, Description: "forced git push"},
		{Category: CategoryDestructiveFilesystem, Expr: `(?i)\bgit\s+reset\s+--hard\b`, Description: "hard git reset"},
		{Category: CategoryDestructiveFilesystem, Expr: `(?i)\bchmod\s+(-R\s+)?777\s+/`, Description: "world-writable permissions on a root path"},
		{Category: CategoryDestructiveFilesystem, Expr: `(?i)\bchown\s+-R\s+\S+\s+/(\s|$)`, Description: "recursive ownership change of the root filesystem"},
		{Category: CategoryDestructiveFilesystem, Expr: `(?i)\btruncate\b[^;|&]*/var/log/`, Description: "system log truncation"},

		// Credential leakage.
		{Category: CategoryCredentialLeakage, Expr: `(?i)\bpassword\s*[:=]\s*\S+`, Description: "password assignment"},
		{Category: CategoryCredentialLeakage, Expr: `(?i)--pass(word)?[=\s]+\S+`, Description: "command-line password flag"},
		{Category: CategoryCredentialLeakage, Expr: `(?i)\b(PGPASSWORD|MYSQL_PWD)=`, Description: "database password environment variable"},
		{Category: CategoryCredentialLeakage, Expr: `(?i)\bapi[_-]?key\s*[:=]\s*\S+`, Description: "API key assignment"},
		{Category: CategoryCredentialLeakage, Expr: `(?i)\b(access|auth|client)[_-]?(token|secret)\s*[:=]\s*\S+`, Description: "token or client secret assignment"},
		{Category: CategoryCredentialLeakage, Expr: `(?i)\bsecret[_-]?key\s*[:=]\s*\S+`, Description: "secret key assignment"},
		{Category: CategoryCredentialLeakage, Expr: `\bsk-[A-Za-z0-9]{40,}\b`, Description: "OpenAI-style secret key"},
		{Category: CategoryCredentialLeakage, Expr: `\bgh[pos]_[A-Za-z0-9]{16,}\b`, Description: "GitHub access token"},
		{Category: CategoryCredentialLeakage, Expr: `\bglpat-[A-Za-z0-9\-_]{20,}\b`, Description: "GitLab personal access token"},
		{Category: CategoryCredentialLeakage, Expr: `\bAKIA[0-9A-Z]{16}\b`, Description: "AWS access key id"},
		{Category: CategoryCredentialLeakage, Expr: `(?i)\baws_(secret_)?access_key`, Description: "AWS key reference"},
		{Category: CategoryCredentialLeakage, Expr: `(?i)\bauthorization\s*[:=]?\s*(bearer|basic)\s+[a-z0-9\-._~+/=]+`, Description: "authorization header with credential"},
		{Category: CategoryCredentialLeakage, Expr: `(?i)-----BEGIN[A-Z ]+PRIVATE\s+KEY`, Description: "private key material"},
		{Category: CategoryCredentialLeakage, Expr: `(?i)\b(mysql|mariadb|mongodb|postgres(ql)?|redis|s?ftp|ssh)://[^:\s]+:[^@\s]+@`, Description: "connection string with embedded credentials"},
		{Category: CategoryCredentialLeakage, Expr: `(?i)\bexport\s+\w*_(secret|key|token|password)\b`, Description: "secret exported into the environment"},

		// Network exfiltration. The prose matchers at the end are intent
		// heuristics that fail closed: they block descriptions of
		// exfiltration goals, not just literal commands, and are expected
		// to produce occasional false positives.
		{Category: CategoryNetworkExfiltration, Expr: `(?i)^\s*(nc|ncat|netcat|socat)\s`, Description: "raw network utility invocation"},
		{Category: CategoryNetworkExfiltration, Expr: `(?i)\b(nc|ncat|netcat)\s+-[lvpe]`, Description: "netcat listener or exec flags"},
		{Category: CategoryNetworkExfiltration, Expr: `(?i)^\s*(telnet|scp|sftp|ftp|rsh|rlogin)\s`, Description: "remote transfer utility invocation"},
		{Category: CategoryNetworkExfiltration, Expr: `(?i)^\s*(curl|wget|fetch|aria2c)\s`, Description: "download utility invocation"},
		{Category: CategoryNetworkExfiltration, Expr: `(?i)^\s*(nmap|masscan|zmap|dig|nslookup|whois)\s`, Description: "network enumeration utility"},
		{Category: CategoryNetworkExfiltration, Expr: `/dev/tcp/[0-9.]+/[0-9]+`, Description: "bash network pseudo-device"},
		{Category: CategoryNetworkExfiltration, Expr: `(?i)\b(bash|sh|zsh|ksh)\s+-i\s+>&\s*/dev/tcp/`, Description: "interactive reverse shell"},
		{Category: CategoryNetworkExfiltration, Expr: `(?i)\b(tar|zip|7z|rar|base64|openssl)\b[^|;]*\|\s*(nc|ncat|netcat|curl|wget)\b`, Description: "archive or encoding piped to a network utility"},
		{Category: CategoryNetworkExfiltration, Expr: `(?i)\bpython3?\b[^;|&]*-m\s+(SimpleHTTPServer|http\.server)`, Description: "ad-hoc HTTP server"},
		{Category: CategoryNetworkExfiltration, Expr: `(?i)\bssh\b[^;|&]*\s-[LRD]\s*[0-9]+:`, Description: "SSH tunnel"},
		{Category: CategoryNetworkExfiltration, Expr: `(?i)\bngrok\s+(tcp|http)\b`, Description: "ngrok tunnel"},
		{Category: CategoryNetworkExfiltration, Expr: `(?i)\b(send|upload|exfiltrate|post)\b.{0,40}\b(data|files?|credentials?|secrets?)\b.{0,40}\b(remote|external)\s+(server|host|machine)`, Description: "exfiltration intent heuristic"},
		{Category: CategoryNetworkExfiltration, Expr: `(?i)\bconnect\b.{0,30}\b(command\s+and\s+control|c2)\s+(server|host)`, Description: "exfiltration intent heuristic"},

		// Command and markup injection.
		{Category: CategoryInjection, Expr: "`[^`]+`", Description: "backtick command substitution"},
		{Category: CategoryInjection, Expr: `\$\([^)]+\)`, Description: "command substitution"},
		{Category: CategoryInjection, Expr: `(?i);\s*(rm|del|format|chmod|chown|nc|netcat)\b`, Description: "chained destructive command"},
		{Category: CategoryInjection, Expr: `(?i)&&\s*(rm|del|format)\b`, Description: "chained destructive command"},
		{Category: CategoryInjection, Expr: `(?i)\|\s*(bash|sh|zsh|ksh|nc|netcat)\b`, Description: "pipe into a shell or network utility"},
		{Category: CategoryInjection, Expr: `(?i)<script[^>]*>`, Description: "script tag"},
		{Category: CategoryInjection, Expr: `(?i)\bjavascript:`, Description: "javascript URL scheme"},
		{Category: CategoryInjection, Expr: `\\x[0-9a-fA-F]{2}`, Description: "hex escape sequence"},
		{Category: CategoryInjection, Expr: `\\u[0-9a-fA-F]{4}`, Description: "unicode escape sequence"},
		{Category: CategoryInjection, Expr: `(?i)%0[ad]`, Description: "encoded newline injection"},
		{Category: CategoryInjection, Expr: `\{\{\s*config\s*\}\}`, Description: "template configuration disclosure"},
		{Category: CategoryInjection, Expr: `\{%[^%]*%\}`, Description: "server-side template block"},
		{Category: CategoryInjection, Expr: `\$\{[^}]*[*+\-/][^}]*\}`, Description: "template expression injection"},
		{Category: CategoryInjection, Expr: `\{\s*['"]?\$(ne|gt|regex)['"]?\s*:`, Description: "NoSQL operator injection"},
		{Category: CategoryInjection, Expr: `\)\s*\(\s*(cn|uid)\s*=`, Description: "LDAP filter injection"},

		// Privilege escalation.
		{Category: CategoryPrivilegeEscalation, Expr: `(?i)(^|[;&|]\s*)\s*(sudo|doas|pkexec|runas)\s`, Description: "privilege escalation command"},
		{Category: CategoryPrivilegeEscalation, Expr: `(?i)(^|[;&|]\s*)\s*su\s+(-|root)\b`, Description: "switch to root user"},
		{Category: CategoryPrivilegeEscalation, Expr: `(?i)\busermod\b[^;|&]*-aG\s+(sudo|wheel|admin)\b`, Description: "adding a user to an admin group"},
		{Category: CategoryPrivilegeEscalation, Expr: `(?i)\bpasswd\s+(root|admin)\b`, Description: "changing a privileged account password"},

		// Path traversal and sensitive path access.
		{Category: CategoryPathTraversal, Expr: `\.\.[/\\]`, Description: "relative path traversal"},
		{Category: CategoryPathTraversal, Expr: `(?i)%2e%2e(%2f|%5c|[/\\])`, Description: "URL-encoded path traversal"},
		{Category: CategoryPathTraversal, Expr: `(?i)%252e%252e`, Description: "double-encoded path traversal"},
		{Category: CategoryPathTraversal, Expr: `(?i)\.\.(%2f|%5c)`, Description: "mixed-encoding path traversal"},
		{Category: CategoryPathTraversal, Expr: `(?i)/etc/(passwd|shadow|sudoers)\b`, Description: "system account database access"},
		{Category: CategoryPathTraversal, Expr: `(?i)/proc/self/environ`, Description: "process environment disclosure"},
		{Category: CategoryPathTraversal, Expr: `(?i)\.ssh/(id_[a-z0-9]+|authorized_keys|known_hosts)`, Description: "SSH key material access"},

		// SQL injection.
		{Category: CategorySQLInjection, Expr: `(?i)['"]\s*;\s*(drop|delete|update|insert|select)\b`, Description: "stacked SQL statement"},
		{Category: CategorySQLInjection, Expr: `(?i)\b(drop|truncate)\s+table\b`, Description: "destructive SQL statement"},
		{Category: CategorySQLInjection, Expr: `(?i)\bunion\s+select\b`, Description: "UNION-based SQL injection"},
		{Category: CategorySQLInjection, Expr: `(?i)\s(or|and)\s+['"]?1['"]?\s*=\s*['"]?1`, Description: "tautology-based SQL injection"},
		{Category: CategorySQLInjection, Expr: `(?i)\bxp_cmdshell\b`, Description: "SQL Server command execution"},

		// Unicode obfuscation. Cyrillic homoglyphs are blocked only when
		// arranged to mimic a dangerous command; the same characters in
		// ordinary Cyrillic prose do not match.
		{Category: CategoryUnicodeSecurity, Expr: `[\x{200B}\x{200C}\x{200D}\x{2060}\x{2064}]`, Description: "zero-width character"},
		{Category: CategoryUnicodeSecurity, Expr: `[\x{202A}-\x{202C}\x{2066}-\x{2069}]`, Description: "bidirectional control character"},
		{Category: CategoryUnicodeSecurity, Expr: `(?i)[гр]m\s+-\S*\s*/`, Description: "homoglyph of a recursive removal command"},
		{Category: CategoryUnicodeSecurity, Expr: `(?i)сurl\s`, Description: "homoglyph of a download utility"},
		{Category: CategoryUnicodeSecurity, Expr: `(?i)[рp]у[tт]hon`, Description: "homoglyph of a python invocation"},
		{Category: CategoryUnicodeSecurity, Expr: `(?i)аpt[-\s]get`, Description: "homoglyph of a package manager command"},
		{Category: CategoryUnicodeSecurity, Expr: `(?i)ѕudo\b`, Description: "homoglyph of a privilege escalation command"},
	}
}
