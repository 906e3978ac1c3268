package record

//go:generate go tool stringer -type=Field -linecomment -output=field_string.go

// Field is a positional column of the process export.
type Field int

const (
	FieldSequenceNumber      Field = iota // lfd_nr
	FieldAHB                              // ahb
	FieldDescription                      // beschreibung
	FieldCheckIdentifier                  // pruefidentifikator
	FieldReaction                         // reaktion
	FieldProcessDescription               // prozessbeschreibung
	FieldChapter                          // kapitel
	FieldLabel                            // bezeichnung
	FieldProcessStep                      // prozessschritt
	FieldAction                           // aktion
	FieldSender                           // komm_von
	FieldReceiver                         // komm_an
	FieldObject                           // objekt
	FieldBusinessCase                     // geschaeftsvorfall
	FieldExtendedAssignment               // erweiterte_zuordnung
	FieldObjectProperty                   // objekteigenschaft
	FieldSectorPower                      // sparte_strom
	FieldSectorGas                        // sparte_gas
	FieldTransmissionPath                 // uebertragungsweg
	FieldFootnote                         // fussnote
	FieldMilestone                        // meilenstein
	FieldSenderTriggerEvents              // komm_von_ausloesende_events
	FieldSenderReadingAPIs                // komm_von_lesende_schnittstellen
	FieldSenderWritingAPIs                // komm_von_schreibende_schnittstellen
	FieldReceiverReadingAPIs              // komm_an_lesende_schnittstellen
	FieldReceiverWritingAPIs              // komm_an_schreibende_schnittstellen

	// FieldCount is the number of columns a complete row carries.
	FieldCount = int(iota)
)

// Fields returns all fields in column order.
func Fields() []Field {
	fields := make([]Field, FieldCount)
	for i := range fields {
		fields[i] = Field(i)
	}

	return fields
}

// FieldByName returns the field whose column alias is name.
func FieldByName(name string) (Field, bool) {
	for _, f := range Fields() {
		if f.String() == name {
			return f, true
		}
	}

	return 0, false
}
