/*
Package storagemodels defines the stored form of converted V2 structs.

StructRecord:
One item per struct, addressed by type name and caller key:

	record := StructRecord{
	    PK:         PartitionKey("Address"), // "STRUCT#Address"
	    SK:         "home",
	    TypeName:   "Address",
	    Attributes: map[string]any{"street": "Main St"},
	    UpdatedAt:  "2025-01-02T03:04:05.000Z",
	}

The "attributes" name matches the reserved key of the map representation,
so a decoded record can be fed back to the converters as a V2 map.
*/
package storagemodels
