// Package uddf provides the typed document model for UDDF (Universal Dive
// Data Format) 3.2 logbooks.
//
// # Document Tree
//
// A Document mirrors the <uddf> root element. The generator is required;
// every other section is optional and nil when absent:
//
//   - MediaData, Maker, Business: media files, manufacturers and shops
//   - Diver: the logbook owner and buddies with their equipment
//   - DiveSite, GasDefinitions, DecoModel: sites, mixes, deco models
//   - ProfileData: repetition groups of recorded dives
//   - TableGeneration, DiveTrip, DiveComputerControl
//
// Struct tags are the attribute/element table used by encoding/xml. Field
// order follows the order UDDF fixes, so encoding writes a conforming
// sequence.
//
// # Identifiers and References
//
// Identifier-bearing elements carry ID *string and references carry
// Ref *string. Nil means absent; a pointer to "" is present but empty,
// which the validator reports.
//
// # Hybrid Enumerations
//
// Constrained vocabulary fields (Sex, Platform, GasUsage, TissueGas, ...)
// are named string types. Standard tokens are typed constants; any other
// token decodes to itself and is written back unchanged:
//
//	usage := uddf.ParseGasUsage("sidemount")  // uddf.GasUsageSidemount
//	vendor := uddf.ParseGasUsage("bailout")   // unknown, IsStandard() == false
//	_ = vendor.String()                       // "bailout"
//
// # Units
//
// Numeric values are stored in the SI units used on the wire: Meters,
// Pascal, Kelvin, Seconds and CubicMeters. Conversion helpers exist for
// display only.
package uddf
