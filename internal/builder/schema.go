package builder

import (
	"reflect"

	"processmap-generator/internal/derive"
	"processmap-generator/internal/openapi"
	"processmap-generator/internal/record"
)

// Schema property names and example keys.
const (
	PropSenderTriggerEvent   = "VON:TRIGGER_EVENT"
	PropSenderReadingAPI     = "VON:LESENDE_API"
	PropSenderWritingAPI     = "VON:SCHREIBENDE_API"
	PropReceiverReadingAPI   = "AN:LESENDE_API"
	PropReceiverWritingAPI   = "AN:SCHREIBENDE_API"
	ExampleCheckIdentifier   = "PRUEFIDENTIFIKATOR"
	exampleSenderPrefix      = "VON ["
	exampleReceiverPrefix    = "AN ["
	exampleTriggerEventLabel = "] TRIGGER EVENT"
	exampleReadingAPILabel   = "] LESENDE API"
	exampleWritingAPILabel   = "] SCHREIBENDE API"
)

type property struct {
	name      string
	source    record.Field
	receiving bool
}

var properties = []property{
	{PropSenderTriggerEvent, record.FieldSenderTriggerEvents, false},
	{PropSenderReadingAPI, record.FieldSenderReadingAPIs, false},
	{PropSenderWritingAPI, record.FieldSenderWritingAPIs, false},
	{PropReceiverReadingAPI, record.FieldReceiverReadingAPIs, true},
	{PropReceiverWritingAPI, record.FieldReceiverWritingAPIs, true},
}

// newSchema builds the component schema a check record defines.
func newSchema(rec record.Record) *openapi.Schema {
	sender := rec.Get(record.FieldSender)
	receiver := rec.Get(record.FieldReceiver)

	props := openapi.NewOrderedMap[*openapi.Property]()

	for _, p := range properties {
		party := sender
		if p.receiving {
			party = receiver
		}

		props.Set(p.name, &openapi.Property{
			Type:        openapi.TypeString,
			Description: rec.Get(p.source),
			Enum:        []string{party},
		})
	}

	return &openapi.Schema{
		Type: openapi.TypeObject,
		Description: rec.Get(record.FieldCheckIdentifier) + " " + sender + derive.Arrow + receiver +
			" " + rec.Get(record.FieldDescription),
		Properties: props,
	}
}

// newExample builds the example object a check record contributes.
func newExample(rec record.Record, key derive.SchemaKey) *openapi.OrderedMap[string] {
	sender := rec.Get(record.FieldSender)
	receiver := rec.Get(record.FieldReceiver)

	ex := openapi.NewOrderedMap[string]()
	ex.Set(ExampleCheckIdentifier, key.ID)
	ex.Set(exampleSenderPrefix+sender+exampleTriggerEventLabel, rec.Get(record.FieldSenderTriggerEvents))
	ex.Set(exampleSenderPrefix+sender+exampleReadingAPILabel, rec.Get(record.FieldSenderReadingAPIs))
	ex.Set(exampleSenderPrefix+sender+exampleWritingAPILabel, rec.Get(record.FieldSenderWritingAPIs))
	ex.Set(exampleReceiverPrefix+receiver+exampleReadingAPILabel, rec.Get(record.FieldReceiverReadingAPIs))
	ex.Set(exampleReceiverPrefix+receiver+exampleWritingAPILabel, rec.Get(record.FieldReceiverWritingAPIs))

	return ex
}

func sameSchema(a, b *openapi.Schema) bool {
	return reflect.DeepEqual(a, b)
}
