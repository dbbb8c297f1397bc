// Package driver loads jijo program images and runs them on the runtime.
// An image is the YAML register-machine form a code generator emits; Compile
// resolves it into a Program whose Entry satisfies runtime.Program.
package driver
