package event

import (
	"reflect"
	"strings"
)

var (
	nameToType    = make(map[string]EventType)
	typeToName    = make(map[EventType]string)
	typeToPayload = make(map[EventType]reflect.Type)
)

// registerType maps a name to an EventType and its payload struct type
// payloadInstance should be a pointer to the payload struct, nil when the event has none
func registerType(name string, et EventType, payloadInstance any) {
	nameToType[strings.ToLower(name)] = et
	typeToName[et] = name
	if payloadInstance != nil {
		t := reflect.TypeOf(payloadInstance)
		if t.Kind() == reflect.Ptr {
			t = t.Elem()
		}
		typeToPayload[et] = t
	}
}

func init() {
	registerType("Lift", EventLift, &LiftPayload{})
	registerType("Collect", EventCollect, &CollectPayload{})
	registerType("Move", EventMove, &MovePayload{})
	registerType("MoveForward", EventMoveForward, nil)
	registerType("MoveBackward", EventMoveBackward, nil)
	registerType("CrossAxisMoveForward", EventCrossAxisMoveForward, nil)
	registerType("CrossAxisMoveBackward", EventCrossAxisMoveBackward, nil)
	registerType("WindowScroll", EventWindowScroll, &WindowScrollPayload{})
	registerType("DroppableScroll", EventDroppableScroll, &DroppableScrollPayload{})
	registerType("Frame", EventFrame, nil)
	registerType("Drop", EventDrop, nil)
	registerType("Cancel", EventCancel, nil)
	registerType("DropAnimationFinished", EventDropAnimationFinished, &DropAnimationPayload{})
}

// ParseEventType returns the EventType for a case-insensitive name
func ParseEventType(name string) (EventType, bool) {
	et, ok := nameToType[strings.ToLower(name)]
	return et, ok
}

func (t EventType) String() string {
	if name, ok := typeToName[t]; ok {
		return name
	}
	return "None"
}

// NewPayloadStruct returns a new pointer to a zero-value payload struct for the event type
// Returns nil if the event carries no payload
func NewPayloadStruct(et EventType) any {
	t, ok := typeToPayload[et]
	if !ok {
		return nil
	}
	return reflect.New(t).Interface()
}
