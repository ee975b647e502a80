// Package service contains the business logic.
//
// It sits between callers and the repository layer. Each operation
// forwards to one repository method, retries transient connectivity
// failures with exponential backoff and logs how the call ended.
package service
