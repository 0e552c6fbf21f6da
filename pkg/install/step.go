package install

import "fmt"

// Step names, in execution order.
const (
	StepCreate         = "create"
	StepEdit           = "edit"
	StepInstall        = "install"
	StepUpdateDatabase = "update-database"
)

// StepError records which step of the install sequence failed. The
// sequence is fail-fast with no rollback, so the step name is the
// only recovery hint a caller gets.
type StepError struct {
	Step string
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %s failed: %v", e.Step, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}
