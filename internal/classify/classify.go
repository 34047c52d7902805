package classify

import "regexp"

// Category is the closed set of install-failure kinds.
type Category int

const (
	Unknown Category = iota
	MissingOpenSSL
	MissingPkgConfig
	MissingLinker
	PermissionDenied
	NetworkError
	DiskFull
	CompilerNotFound
	PackageManagerNotFound
	CompilationFailed
	DownloadFailed
)

// rules are checked in order; the first match wins. Order matters: a message
// mentioning both pkg-config and the network must classify by the earlier rule.
// Matching is case-sensitive; (?s) lets loose phrases span lines.
var rules = []struct {
	re  *regexp.Regexp
	cat Category
}{
	{regexp.MustCompile(`Could not find openssl via pkg-config`), MissingOpenSSL},
	{regexp.MustCompile(`pkg-config command could not be found`), MissingPkgConfig},
	{regexp.MustCompile(`(?s)linker.*not found`), MissingLinker},
	{regexp.MustCompile(`permission denied`), PermissionDenied},
	{regexp.MustCompile(`(?s)(network.*error|connection.*failed)`), NetworkError},
	{regexp.MustCompile(`(?s)(disk.*full|no space left)`), DiskFull},
	{regexp.MustCompile(`(?s)rustc.*not found`), CompilerNotFound},
	{regexp.MustCompile(`(?s)cargo.*not found`), PackageManagerNotFound},
	{regexp.MustCompile(`failed to compile`), CompilationFailed},
	{regexp.MustCompile(`failed to download`), DownloadFailed},
}

// Classify maps captured install stderr to a failure category.
// Total and deterministic: unmatched text is Unknown.
func Classify(errText string) Category {
	for _, r := range rules {
		if r.re.MatchString(errText) {
			return r.cat
		}
	}
	return Unknown
}

// String returns the category's short name.
func (c Category) String() string {
	switch c {
	case MissingOpenSSL:
		return "missing openssl"
	case MissingPkgConfig:
		return "missing pkg-config"
	case MissingLinker:
		return "missing linker"
	case PermissionDenied:
		return "permission denied"
	case NetworkError:
		return "network error"
	case DiskFull:
		return "disk full"
	case CompilerNotFound:
		return "rustc not found"
	case PackageManagerNotFound:
		return "cargo not found"
	case CompilationFailed:
		return "compilation failed"
	case DownloadFailed:
		return "download failed"
	default:
		return "unknown error"
	}
}

// Explanation returns the fixed human-readable description for the category.
func (c Category) Explanation() string {
	switch c {
	case MissingOpenSSL:
		return "OpenSSL development headers are missing"
	case MissingPkgConfig:
		return "pkg-config is not installed"
	case MissingLinker:
		return "no C linker is available"
	case PermissionDenied:
		return "no write access to the cargo install directory"
	case NetworkError:
		return "a network request failed during the build"
	case DiskFull:
		return "the disk ran out of space"
	case CompilerNotFound:
		return "the Rust compiler is not on PATH"
	case PackageManagerNotFound:
		return "cargo is not on PATH"
	case CompilationFailed:
		return "the crate failed to compile"
	case DownloadFailed:
		return "the crate could not be downloaded"
	default:
		return "the install failed for an unrecognized reason"
	}
}

// Remedy returns a suggested fix command, or "" when there is no canned one.
func (c Category) Remedy() string {
	switch c {
	case MissingOpenSSL:
		return "sudo apt install libssl-dev pkg-config"
	case MissingPkgConfig:
		return "sudo apt install pkg-config"
	case MissingLinker:
		return "sudo apt install build-essential"
	case PermissionDenied:
		return "check ownership of ~/.cargo"
	case NetworkError, DownloadFailed:
		return "check connectivity and retry"
	case DiskFull:
		return "free disk space and retry"
	case CompilerNotFound, PackageManagerNotFound:
		return "curl --proto '=https' --tlsv1.2 -sSf https://sh.rustup.rs | sh"
	default:
		return ""
	}
}
