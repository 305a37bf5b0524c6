package toolchain

import (
	"os/exec"
	"strings"

	"golang.org/x/mod/semver"

	"igcpp/errs"
)

// Probe verifies at startup that the configured compiler exists and is
// recent enough. A missing compiler is fatal; an unparseable version
// string is not. The reported version is returned for the banner.
func Probe(command, minVersion string) (string, error) {
	if _, err := exec.LookPath(command); err != nil {
		return "", errs.NewInternalError("compiler not found: " + command).Wrap(err)
	}

	out, err := exec.Command(command, "-dumpfullversion").Output()
	if err != nil {
		// Older gcc and some clang builds only know -dumpversion.
		out, err = exec.Command(command, "-dumpversion").Output()
		if err != nil {
			return "", nil
		}
	}
	version := strings.TrimSpace(string(out))
	if !versionSatisfied(version, minVersion) {
		return version, errs.NewInternalError(
			command + " " + version + " is older than the configured minimum " + minVersion)
	}
	return version, nil
}

// versionSatisfied compares dotted compiler versions, tolerating
// anything semver cannot parse.
func versionSatisfied(version, minVersion string) bool {
	v, min := "v"+version, "v"+minVersion
	if !semver.IsValid(v) || !semver.IsValid(min) {
		return true
	}
	return semver.Compare(v, min) >= 0
}
