package builtins

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"nyalang/types"
)

// shortPath abbreviates long paths in warnings
func shortPath(p string) string {
	if len(p) > 32 {
		return p[:29] + " ..."
	}
	return p
}

// warnFileError turns an os error into a runtime warning
func (r *Registry) warnFileError(ctx *types.TaskContext, name, path string, err error) {
	p := shortPath(path)
	switch {
	case path == "":
		r.Warn(ctx, "In static method [$%s]: the path string is empty.", name)
	case errors.Is(err, fs.ErrNotExist):
		r.Warn(ctx, "In static method [$%s]: the specified file \"%s\" was not found.", name, p)
	case errors.Is(err, fs.ErrPermission):
		r.Warn(ctx, "In static method [$%s]: no permission to access the specified file or directory \"%s\".", name, p)
	default:
		r.Warn(ctx, "In static method [$%s]: where the path string is \"%s\": %v.", name, p, err)
	}
}

// pathArg extracts a string path argument, warning when it is not a string
func (r *Registry) pathArg(ctx *types.TaskContext, name string, v types.Value) (string, bool) {
	s, ok := v.(types.StrValue)
	if !ok {
		r.Warn(ctx, "In static method [$%s]: the argument 'path' should be string, but given '%s'.", name, v.Type())
		return "", false
	}
	return s.Value(), true
}

// builtinFileReadAllText returns a file's contents; "" on failure
// $FileReadAllText(path) -> string
func (r *Registry) builtinFileReadAllText(ctx *types.TaskContext, args []types.Value) types.Result {
	if res, ok := checkArgs("FileReadAllText", args, 1); !ok {
		return res
	}
	path, ok := r.pathArg(ctx, "FileReadAllText", args[0])
	if !ok {
		return types.Ok(types.NewStr(""))
	}
	data, err := os.ReadFile(path)
	if err != nil {
		r.warnFileError(ctx, "FileReadAllText", path, err)
		return types.Ok(types.NewStr(""))
	}
	return types.Ok(types.NewStr(string(data)))
}

// builtinFileReadAllLines returns a file's lines as an array; null on failure
// $FileReadAllLines(path) -> array
func (r *Registry) builtinFileReadAllLines(ctx *types.TaskContext, args []types.Value) types.Result {
	if res, ok := checkArgs("FileReadAllLines", args, 1); !ok {
		return res
	}
	path, ok := r.pathArg(ctx, "FileReadAllLines", args[0])
	if !ok {
		return types.Ok(types.Null)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		r.warnFileError(ctx, "FileReadAllLines", path, err)
		return types.Ok(types.Null)
	}
	return types.Ok(types.NewValue(splitLines(string(data))))
}

// splitLines splits text into lines, dropping the final terminator
func splitLines(text string) []string {
	if text == "" {
		return []string{}
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.TrimSuffix(text, "\n")
	return strings.Split(text, "\n")
}

// builtinFileWriteAllText writes a string to a file, replacing it
// $FileWriteAllText(path, text) -> null
func (r *Registry) builtinFileWriteAllText(ctx *types.TaskContext, args []types.Value) types.Result {
	if res, ok := checkArgs("FileWriteAllText", args, 2); !ok {
		return res
	}
	path, ok := r.pathArg(ctx, "FileWriteAllText", args[0])
	if !ok {
		return types.Ok(types.Null)
	}
	text, ok := args[1].(types.StrValue)
	if !ok {
		r.Warn(ctx, "In static method [$FileWriteAllText]: the argument 'text' should be string, but given '%s'.", args[1].Type())
		return types.Ok(types.Null)
	}
	if err := os.WriteFile(path, []byte(text.Value()), 0o644); err != nil {
		r.warnFileError(ctx, "FileWriteAllText", path, err)
	}
	return types.Ok(types.Null)
}

// builtinFileWriteAllLines writes the text of each array element as a line
// $FileWriteAllLines(path, lines) -> null
func (r *Registry) builtinFileWriteAllLines(ctx *types.TaskContext, args []types.Value) types.Result {
	if res, ok := checkArgs("FileWriteAllLines", args, 2); !ok {
		return res
	}
	path, ok := r.pathArg(ctx, "FileWriteAllLines", args[0])
	if !ok {
		return types.Ok(types.Null)
	}
	lines, ok := args[1].(types.ArrayValue)
	if !ok {
		r.Warn(ctx, "In static method [$FileWriteAllLines]: the argument 'texts' should be array, but given '%s'.", args[1].Type())
		return types.Ok(types.Null)
	}

	var sb strings.Builder
	for _, line := range lines.Elements() {
		sb.WriteString(types.ToText(line))
		sb.WriteByte('\n')
	}
	if err := os.WriteFile(path, []byte(sb.String()), 0o644); err != nil {
		r.warnFileError(ctx, "FileWriteAllLines", path, err)
	}
	return types.Ok(types.Null)
}
