package core

type ErrorNotFound struct {
}

func (e ErrorNotFound) Error() string {
	return "Not Found"
}

func NewErrorNotFound() ErrorNotFound {
	return ErrorNotFound{}
}

type ErrorPermissionDenied struct {
}

func (e ErrorPermissionDenied) Error() string {
	return "Permission Denied"
}

func NewErrorPermissionDenied() ErrorPermissionDenied {
	return ErrorPermissionDenied{}
}

type ErrorEmptyWhere struct {
	Operation string
}

func (e ErrorEmptyWhere) Error() string {
	return "where is required for " + e.Operation
}

func NewErrorEmptyWhere(operation string) ErrorEmptyWhere {
	return ErrorEmptyWhere{Operation: operation}
}

type ErrorBadCondition struct {
	Condition string
}

func (e ErrorBadCondition) Error() string {
	return "unsupported condition: " + e.Condition
}

func NewErrorBadCondition(condition string) ErrorBadCondition {
	return ErrorBadCondition{Condition: condition}
}

type ErrorBadSchema struct {
	Detail string
}

func (e ErrorBadSchema) Error() string {
	return "bad schema: " + e.Detail
}

func NewErrorBadSchema(detail string) ErrorBadSchema {
	return ErrorBadSchema{Detail: detail}
}
