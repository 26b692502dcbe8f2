package errors

// Error message constants for the py-imports-reorder application
const (
	// File processing errors
	ErrMsgFailedToReadFile  = "failed to read file"
	ErrMsgFailedToParseFile = "failed to parse file"
	ErrMsgFailedToWriteFile = "failed to write file"
	ErrMsgFileNotUTF8       = "%s is non-utf-8 (not supported)"

	// Directory processing errors
	ErrMsgFailedToCheckPath     = "failed to check path"
	ErrMsgFailedToFindPyFiles   = "failed to find Python files in directory"
	ErrMsgFilesFailedToProcess  = "%d files failed to process"
	ErrMsgFailedToReadStdin     = "failed to read stdin"
	ErrMsgInvalidExcludePattern = "invalid exclude pattern"

	// Directive validation errors
	ErrMsgExpectedImport        = "expected import: %q"
	ErrMsgExpectedReplaceImport = "expected `orig.mod=new.mod` or `orig.mod=new.mod:attr`: %q"
	ErrMsgFailedToLoadConfig    = "failed to load config file"

	// Info/warning messages
	InfoMsgNoPyFilesFound  = "No Python files found in directory: %s"
	InfoMsgReordering      = "Reordering imports in %s"
	InfoMsgErrorProcessing = "Error processing %s: %v"
)
