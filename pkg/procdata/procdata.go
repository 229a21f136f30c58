// Package procdata decodes ISO 11783-10 process data messages and labels
// them with data dictionary entries.
package procdata

import (
	"encoding/binary"
	"errors"
	"fmt"

	"go.einride.tech/can"

	"github.com/open-agriculture/isobus-ddi/pkg/ddi"
)

// PGN is the parameter group number of process data messages.
const PGN uint32 = 0xCB00

// ErrNotProcessData is returned for frames that do not carry PGN 0xCB00.
var ErrNotProcessData = errors.New("not a process data frame")

// Command is the low nibble of the first payload byte.
type Command uint8

// Process data commands.
const (
	CommandTechnicalCapabilities       Command = 0x0
	CommandDeviceDescriptor            Command = 0x1
	CommandRequestValue                Command = 0x2
	CommandValue                       Command = 0x3
	CommandMeasurementTimeInterval     Command = 0x4
	CommandMeasurementDistanceInterval Command = 0x5
	CommandMeasurementMinimum          Command = 0x6
	CommandMeasurementMaximum          Command = 0x7
	CommandMeasurementChangeThreshold  Command = 0x8
	CommandPeerControlAssignment       Command = 0x9
	CommandSetValueAndAcknowledge      Command = 0xA
	CommandAcknowledge                 Command = 0xD
	CommandStatus                      Command = 0xE
	CommandClientTask                  Command = 0xF
)

var commandNames = map[Command]string{
	CommandTechnicalCapabilities:       "technical capabilities",
	CommandDeviceDescriptor:            "device descriptor",
	CommandRequestValue:                "request value",
	CommandValue:                       "value",
	CommandMeasurementTimeInterval:     "measurement time interval",
	CommandMeasurementDistanceInterval: "measurement distance interval",
	CommandMeasurementMinimum:          "measurement minimum within threshold",
	CommandMeasurementMaximum:          "measurement maximum within threshold",
	CommandMeasurementChangeThreshold:  "measurement change threshold",
	CommandPeerControlAssignment:       "peer control assignment",
	CommandSetValueAndAcknowledge:      "set value and acknowledge",
	CommandAcknowledge:                 "process data acknowledge",
	CommandStatus:                      "task controller status",
	CommandClientTask:                  "client task",
}

func (c Command) String() string {
	if s, ok := commandNames[c]; ok {
		return s
	}
	return fmt.Sprintf("reserved (0x%X)", uint8(c))
}

// carriesDDI reports whether bytes 2..7 hold a DDI and a value.
func (c Command) carriesDDI() bool {
	return c >= CommandRequestValue && c <= CommandSetValueAndAcknowledge
}

// Message is a decoded process data frame.
type Message struct {
	Source      uint8
	Destination uint8
	Priority    uint8
	Command     Command
	Element     uint16
	DDI         uint16
	Value       int32
}

// Decode extracts a process data message from an extended CAN frame.
func Decode(f can.Frame) (Message, error) {
	if !f.IsExtended {
		return Message{}, fmt.Errorf("%w: standard identifier 0x%X", ErrNotProcessData, f.ID)
	}
	pf := uint8(f.ID >> 16)
	dp := (f.ID >> 24) & 0x3
	if pf != uint8(PGN>>8) || dp != 0 {
		return Message{}, fmt.Errorf("%w: PGN 0x%X", ErrNotProcessData, pgnOf(f.ID))
	}
	if f.Length < 8 {
		return Message{}, fmt.Errorf("process data frame has %d bytes, want 8", f.Length)
	}

	m := Message{
		Priority:    uint8(f.ID>>26) & 0x7,
		Destination: uint8(f.ID >> 8),
		Source:      uint8(f.ID),
		Command:     Command(f.Data[0] & 0x0F),
		Element:     uint16(f.Data[0]>>4) | uint16(f.Data[1])<<4,
	}
	if m.Command.carriesDDI() {
		m.DDI = binary.LittleEndian.Uint16(f.Data[2:4])
		m.Value = int32(binary.LittleEndian.Uint32(f.Data[4:8]))
	}
	return m, nil
}

// Encode builds the CAN frame for m. It is the inverse of Decode for
// commands carrying a DDI.
func Encode(m Message) can.Frame {
	f := can.Frame{
		ID: uint32(m.Priority&0x7)<<26 | PGN<<8 |
			uint32(m.Destination)<<8 | uint32(m.Source),
		Length:     8,
		IsExtended: true,
	}
	f.Data[0] = byte(m.Command&0x0F) | byte(m.Element&0x0F)<<4
	f.Data[1] = byte(m.Element >> 4)
	binary.LittleEndian.PutUint16(f.Data[2:4], m.DDI)
	binary.LittleEndian.PutUint32(f.Data[4:8], uint32(m.Value))
	return f
}

// ParseCandump parses a frame in candump "ID#DATA" notation and decodes it.
func ParseCandump(s string) (Message, error) {
	var f can.Frame
	if err := f.UnmarshalString(s); err != nil {
		return Message{}, fmt.Errorf("parse frame %q: %w", s, err)
	}
	return Decode(f)
}

// Describe renders m with the entry name and formatted value from dict.
// A nil dict uses ddi.Standard().
func (m Message) Describe(dict *ddi.Dictionary) string {
	if dict == nil {
		dict = ddi.Standard()
	}
	head := fmt.Sprintf("0x%02X -> 0x%02X %s element %d", m.Source, m.Destination, m.Command, m.Element)
	if !m.Command.carriesDDI() {
		return head
	}
	e := dict.Lookup(m.DDI)
	if m.Command == CommandRequestValue {
		return fmt.Sprintf("%s DDI %d (%s)", head, m.DDI, e.Name)
	}
	return fmt.Sprintf("%s DDI %d (%s) = %s", head, m.DDI, e.Name, e.FormatValue(m.Value))
}

func pgnOf(id uint32) uint32 {
	pgn := (id >> 8) & 0x3FFFF
	if uint8(pgn>>8) < 0xF0 {
		pgn &^= 0xFF
	}
	return pgn
}
