package isa

// Layout selects the upper half of an instruction word.
type Layout int

//go:generate go tool stringer -linecomment -type=Layout
const (
	LAYOUT_R     = Layout(0) // funct7
	LAYOUT_SHIFT = Layout(1) // funct6
)

// Field names a bit range of the instruction word.
type Field int

//go:generate go tool stringer -linecomment -type=Field
const (
	FIELD_OPCODE = Field(0) // opcode
	FIELD_RD     = Field(1) // rd
	FIELD_FUNCT3 = Field(2) // funct3
	FIELD_RS1    = Field(3) // rs1
	FIELD_RS2    = Field(4) // rs2
	FIELD_SHAMT  = Field(5) // shamt
	FIELD_FUNCT6 = Field(6) // funct6
	FIELD_FUNCT7 = Field(7) // funct7
)

// fieldSpan is the inclusive bit range of each Field.
var fieldSpan = [...]struct{ Begin, End int }{
	FIELD_OPCODE: {0, 6},
	FIELD_RD:     {7, 11},
	FIELD_FUNCT3: {12, 14},
	FIELD_RS1:    {15, 19},
	FIELD_RS2:    {20, 24},
	FIELD_SHAMT:  {20, 25},
	FIELD_FUNCT6: {26, 31},
	FIELD_FUNCT7: {25, 31},
}

// Span returns the inclusive bit range of the field.
func (fd Field) Span() (begin, end int) {
	span := fieldSpan[fd]
	return span.Begin, span.End
}

// Width of the field, in bits.
func (fd Field) Width() int {
	span := fieldSpan[fd]
	return span.End - span.Begin + 1
}

// allowed reports if the field may be written under the layout.
func (layout Layout) allowed(fd Field) bool {
	switch fd {
	case FIELD_SHAMT, FIELD_FUNCT6:
		return layout == LAYOUT_SHIFT
	case FIELD_RS2, FIELD_FUNCT7:
		return layout == LAYOUT_R
	}
	return true
}

// Fields returns the fields of the layout, most significant first.
func (layout Layout) Fields() []Field {
	if layout == LAYOUT_SHIFT {
		return []Field{FIELD_FUNCT6, FIELD_SHAMT, FIELD_RS1, FIELD_FUNCT3, FIELD_RD, FIELD_OPCODE}
	}
	return []Field{FIELD_FUNCT7, FIELD_RS2, FIELD_RS1, FIELD_FUNCT3, FIELD_RD, FIELD_OPCODE}
}
