package main

import (
	"fmt"
	"os"

	"github.com/kbukum/objectid/errors"
)

func main() {
	a := &app{}
	err := newRootCmd(a).Execute()
	a.close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", errorMessage(err))
		os.Exit(exitCode(err))
	}
}

// exitCode is 2 for rejected input and 1 for everything else.
func exitCode(err error) int {
	if errors.Is(err, errors.ErrCodeInvalidRequest) {
		return 2
	}
	return 1
}

func errorMessage(err error) string {
	if appErr, ok := errors.AsAppError(err); ok && appErr.HTTPStatus < 500 {
		return appErr.Message
	}
	return err.Error()
}
