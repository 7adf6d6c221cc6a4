package schedule

import "context"

// Task 一次可重复执行的工作单元, 由Runner周期性驱动
type Task interface {
	Run(ctx context.Context) error
	Name() string
}
