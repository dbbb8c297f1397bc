// Package runtime is the support layer linked into compiled jijo programs.
// It defines the tagged Value passed between generated code and the host,
// the Composite store behind object and array values, the operators the
// code generator calls, the print/assert builtins and the entry contract.
// Every contract violation is reported through Fatalf and ends the process.
package runtime
