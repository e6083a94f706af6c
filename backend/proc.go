package backend

import "strings"

// Dynamically resolved entry points of VK_EXT_debug_utils.
const (
	CreateDebugUtilsMessengerProc  = "vkCreateDebugUtilsMessengerEXT"
	DestroyDebugUtilsMessengerProc = "vkDestroyDebugUtilsMessengerEXT"
)

// CreateDebugUtilsMessengerFunc is what Instance.ProcAddr returns for
// CreateDebugUtilsMessengerProc.
type CreateDebugUtilsMessengerFunc func(info DebugUtilsMessengerCreateInfo) (Messenger, Result, error)

// DestroyDebugUtilsMessengerFunc is what Instance.ProcAddr returns for
// DestroyDebugUtilsMessengerProc.
type DestroyDebugUtilsMessengerFunc func(messenger Messenger)

// DebugUtilsMessengerCallback receives a message from the validation layers.
// Returning true asks the layer to abort the call that triggered the message.
type DebugUtilsMessengerCallback func(severity MessageSeverity, msgType MessageType, message string) bool

// DebugUtilsMessengerCreateInfo configures a debug messenger.
type DebugUtilsMessengerCreateInfo struct {
	MessageSeverity MessageSeverity
	MessageType     MessageType
	UserCallback    DebugUtilsMessengerCallback
}

// MessageSeverity is a set of debug message severities.
type MessageSeverity uint32

const (
	SeverityVerbose MessageSeverity = 0x1
	SeverityInfo    MessageSeverity = 0x10
	SeverityWarning MessageSeverity = 0x100
	SeverityError   MessageSeverity = 0x1000
)

var severityNames = []struct {
	flag MessageSeverity
	name string
}{
	{SeverityVerbose, "Verbose"},
	{SeverityInfo, "Info"},
	{SeverityWarning, "Warning"},
	{SeverityError, "Error"},
}

func (s MessageSeverity) String() string {
	var names []string
	for _, n := range severityNames {
		if s&n.flag != 0 {
			names = append(names, n.name)
		}
	}
	if len(names) == 0 {
		return "None"
	}
	return strings.Join(names, "|")
}

// MessageType is a set of debug message categories.
type MessageType uint32

const (
	TypeGeneral     MessageType = 0x1
	TypeValidation  MessageType = 0x2
	TypePerformance MessageType = 0x4

	TypeAll = TypeGeneral | TypeValidation | TypePerformance
)

var typeNames = []struct {
	flag MessageType
	name string
}{
	{TypeGeneral, "General"},
	{TypeValidation, "Validation"},
	{TypePerformance, "Performance"},
}

func (t MessageType) String() string {
	var names []string
	for _, n := range typeNames {
		if t&n.flag != 0 {
			names = append(names, n.name)
		}
	}
	if len(names) == 0 {
		return "None"
	}
	return strings.Join(names, "|")
}
