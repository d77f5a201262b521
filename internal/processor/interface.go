package processor

import "context"

// Processor summarizes drop-folder files.
type Processor interface {
	// Process handles a single input file end to end.
	Process(ctx context.Context, inputPath string) error
	// ProcessBacklog handles files already waiting in the input folder.
	ProcessBacklog(ctx context.Context) error
}

// SupportedExtensions lists the input file types Process understands.
var SupportedExtensions = []string{".json", ".txt", ".srt", ".vtt"}
