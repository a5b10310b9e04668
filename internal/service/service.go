package service

import (
	"fmt"

	"github.com/user/cinemax/internal/errs"
)

// internalError 对外只暴露 message，原始错误保留在错误链中用于日志与上报
func internalError(message string, err error) error {
	return fmt.Errorf("%w: %v", errs.Errorf(errs.EINTERNAL, "%s", message), err)
}
