package auth

const (
	RequesterCtxKey = "rg-requester"
)

const (
	RequesterPrincipalHeader  = "rg-requester-principal"
	RequesterAttributesHeader = "rg-requester-attributes"
)
