package logging

import "context"

type commandKey struct{}

// WithCommand tags ctx with the REPL command being run. Both adapters add
// it to every entry logged under ctx as the "command" attribute.
func WithCommand(ctx context.Context, cmd string) context.Context {
	return context.WithValue(ctx, commandKey{}, cmd)
}

// CommandFrom returns the command ctx was tagged with.
func CommandFrom(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	cmd, ok := ctx.Value(commandKey{}).(string)
	return cmd, ok
}

// withCommand appends the command attribute to args without touching the
// caller's backing array.
func withCommand(ctx context.Context, args []any) []any {
	cmd, ok := CommandFrom(ctx)
	if !ok {
		return args
	}
	return append(args[:len(args):len(args)], "command", cmd)
}
