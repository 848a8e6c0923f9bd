package launcher

import "fmt"

const helpTemplate = `Python Launcher for Unix %s

usage: %s [launcher-args] [python-args]

launcher-args:
  -h/--help      this output, followed by the interpreter's own help
  --list         list all discovered interpreters (version | path)
  --list-json    the same listing, as JSON
  --version      print the launcher's version
  -X             launch the newest Python X interpreter (e.g. -3)
  -X.Y           launch Python X.Y exactly (e.g. -3.12)

environment variables:
  VIRTUAL_ENV     an activated virtual environment; its interpreter is
                  always preferred when no version is requested
  PY_PYTHON       version to use when nothing else restricts it (e.g. 3.12)
  PY_PYTHONX      version to use when only major version X is requested
  PYLAUNCH_DEBUG  enable debug logging to stderr

The following help is from:
%s
`

func helpMessage(launcherPath, executable string) string {
	return fmt.Sprintf(helpTemplate, Version, launcherPath, executable)
}
