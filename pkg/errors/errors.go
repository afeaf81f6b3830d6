package errors

import "errors"

// Error message constants for the ts-imports-group application
const (
	// File processing errors
	ErrMsgFailedToReadFile  = "failed to read file"
	ErrMsgFailedToWriteFile = "failed to write file"
	ErrMsgFailedToReadStdin = "failed to read stdin"
	ErrMsgFailedToDiffFile  = "failed to diff file"

	// Directory processing errors
	ErrMsgFailedToCheckPath       = "failed to check path"
	ErrMsgFailedToFindSourceFiles = "failed to find source files in directory"
	ErrMsgFilesFailedToProcess    = "%d files failed to process"
	ErrMsgFilesNeedFormatting     = "%d files need their imports grouped"

	// Configuration errors
	ErrMsgFailedToLoadConfig  = "failed to load config"
	ErrMsgFailedToParseConfig = "failed to parse config"
	ErrMsgUnknownConfigFormat = "unknown config format"
	ErrMsgFailedToGetWorkDir  = "failed to get current working directory"

	// Info/warning messages
	WarnMsgProcessingDirWithoutInPlace = "Warning: Processing directory without --in-place flag. No files will be modified."
	InfoMsgUseInPlaceFlag              = "Use --in-place flag to modify files, --check to verify them, or --diff to preview changes."
	InfoMsgNoSourceFilesFound          = "No source files found in: %s"
	InfoMsgFoundSourceFiles            = "Found %d source files in: %s"
	InfoMsgProjectRoot                 = "Project root: %s"
	InfoMsgFileUpdated                 = "updated   %s"
	InfoMsgFileUnchanged               = "unchanged %s"
	InfoMsgFileNeedsUpdate             = "would update %s"
	InfoMsgErrorProcessing             = "Error processing %s: %v"
	InfoMsgProcessedCount              = "\nProcessed %d files successfully"
	InfoMsgErrorCount                  = ", %d files had errors"
)

var (
	// ErrInvalidConfig is returned when a resolved configuration cannot be used.
	ErrInvalidConfig = errors.New("invalid config")
	// ErrCheckFailed is returned by --check when at least one file would change.
	ErrCheckFailed = errors.New("imports are not grouped")
)
