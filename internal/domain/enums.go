package domain

import (
	"fmt"
	"strings"
)

// TaskPriority is the urgency of an action item.
type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "LOW"
	TaskPriorityMedium TaskPriority = "MEDIUM"
	TaskPriorityHigh   TaskPriority = "HIGH"
	TaskPriorityUrgent TaskPriority = "URGENT"
)

func (p TaskPriority) String() string { return string(p) }

func (p TaskPriority) IsValid() bool {
	switch p {
	case TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh, TaskPriorityUrgent:
		return true
	}
	return false
}

// ParseTaskPriority normalizes a free-form priority string (as produced by
// the LLM or typed by a user) to the enum. Empty input means MEDIUM.
func ParseTaskPriority(s string) (TaskPriority, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	switch s {
	case "":
		return TaskPriorityMedium, nil
	case "CRITICAL":
		return TaskPriorityUrgent, nil
	case "NORMAL":
		return TaskPriorityMedium, nil
	}
	p := TaskPriority(s)
	if !p.IsValid() {
		return "", fmt.Errorf("unknown priority %q", s)
	}
	return p, nil
}

// TaskStatus is the lifecycle state of an action item.
type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "PENDING"
	TaskStatusInProgress TaskStatus = "IN_PROGRESS"
	TaskStatusCompleted  TaskStatus = "COMPLETED"
	TaskStatusCancelled  TaskStatus = "CANCELLED"
)

func (s TaskStatus) String() string { return string(s) }

func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted, TaskStatusCancelled:
		return true
	}
	return false
}

// TaskSource records who created a task.
type TaskSource string

const (
	TaskSourceAI     TaskSource = "AI"
	TaskSourceManual TaskSource = "MANUAL"
)

func (s TaskSource) String() string { return string(s) }

// ExportFormat is an artifact output format.
type ExportFormat string

const (
	ExportFormatPDF      ExportFormat = "PDF"
	ExportFormatMarkdown ExportFormat = "MARKDOWN"
	ExportFormatWord     ExportFormat = "WORD"
	ExportFormatJSON     ExportFormat = "JSON"
)

func (f ExportFormat) String() string { return string(f) }

func (f ExportFormat) IsValid() bool {
	switch f {
	case ExportFormatPDF, ExportFormatMarkdown, ExportFormatWord, ExportFormatJSON:
		return true
	}
	return false
}

// RecordingFileType is the Zoom recording file type.
type RecordingFileType string

const (
	FileTypeMP4        RecordingFileType = "MP4"
	FileTypeM4A        RecordingFileType = "M4A"
	FileTypeTranscript RecordingFileType = "TRANSCRIPT"
	FileTypeChat       RecordingFileType = "CHAT"
	FileTypeTimeline   RecordingFileType = "TIMELINE"
	FileTypeCC         RecordingFileType = "CC"
)

func (t RecordingFileType) String() string { return string(t) }

func (t RecordingFileType) IsValid() bool {
	switch t {
	case FileTypeMP4, FileTypeM4A, FileTypeTranscript, FileTypeChat, FileTypeTimeline, FileTypeCC:
		return true
	}
	return false
}

// Extension returns the storage file extension for the type, "bin" when unknown.
func (t RecordingFileType) Extension() string {
	switch t {
	case FileTypeMP4:
		return "mp4"
	case FileTypeM4A:
		return "m4a"
	case FileTypeTranscript, FileTypeCC:
		return "vtt"
	case FileTypeChat:
		return "txt"
	case FileTypeTimeline:
		return "json"
	}
	return "bin"
}

// MeetingSource records how a meeting entered the system.
type MeetingSource string

const (
	MeetingSourceZoom   MeetingSource = "ZOOM"
	MeetingSourceCSV    MeetingSource = "CSV"
	MeetingSourceManual MeetingSource = "MANUAL"
)

func (s MeetingSource) String() string { return string(s) }

// Sentiment is the overall tone of a meeting as judged by analysis.
type Sentiment string

const (
	SentimentPositive Sentiment = "POSITIVE"
	SentimentNeutral  Sentiment = "NEUTRAL"
	SentimentNegative Sentiment = "NEGATIVE"
	SentimentMixed    Sentiment = "MIXED"
)

func (s Sentiment) String() string { return string(s) }

// ParseSentiment maps free-form sentiment to the enum; anything unknown is NEUTRAL.
func ParseSentiment(s string) Sentiment {
	switch v := Sentiment(strings.ToUpper(strings.TrimSpace(s))); v {
	case SentimentPositive, SentimentNegative, SentimentMixed:
		return v
	}
	return SentimentNeutral
}
