/*
Package ddb stores converted V2 structs in a single DynamoDB table.

Item layout:

	PK         = "STRUCT#<typeName>"
	SK         = <key>
	typeName   = <typeName>
	attributes = <converted attributes, as a DynamoDB map>
	updatedAt  = <strfmt date-time>

Usage:

	store, err := ddb.NewDynamodbStructStore(ctx, accessKey, secretKey, region, "structs")
	if err != nil {
	    return err
	}
	address, _ := conv.StructToV2(v1Address, "Address")
	err = store.Put(ctx, "home", address)

	stored, err := store.GetOne(ctx, "Address", "home")

MarshalStruct and UnmarshalStruct expose the item codec for callers that
batch writes themselves.
*/
package ddb
