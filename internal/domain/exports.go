package domain

import (
	interfaces "vitaverify/internal/domain/interfaces"
	types "vitaverify/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	Field                = types.Field
	Fingerprint          = types.Fingerprint
	AttestedSession      = types.AttestedSession
	SessionMeta          = types.SessionMeta
	Attribute            = types.Attribute
	RedemptionCode       = types.RedemptionCode
	SignedRedemptionCode = types.SignedRedemptionCode
	Ed25519Public        = types.Ed25519Public
	Ed25519Private       = types.Ed25519Private
	IssuerKey            = types.IssuerKey
	Error                = types.Error
	ErrorKind            = types.ErrorKind
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	SessionParser     = interfaces.SessionParser
	AttributeVerifier = interfaces.AttributeVerifier
	CodeSigner        = interfaces.CodeSigner
	Redeemer          = interfaces.Redeemer
	IssuerKeyStore    = interfaces.IssuerKeyStore
	VerifyClient      = interfaces.VerifyClient
)

const (
	FieldAuthor        = types.FieldAuthor
	FieldContent       = types.FieldContent
	FieldPostID        = types.FieldPostID
	FieldBookmarkCount = types.FieldBookmarkCount
	FieldFavoriteCount = types.FieldFavoriteCount
	FieldRetweetCount  = types.FieldRetweetCount

	KindUnknown        = types.KindUnknown
	KindNotFound       = types.KindNotFound
	KindSignature      = types.KindSignature
	KindInvalidMessage = types.KindInvalidMessage

	CodeVersion   = types.CodeVersion
	CodeClient    = types.CodeClient
	CodeDelimiter = types.CodeDelimiter
)

var (
	ErrNotFound       = types.ErrNotFound
	ErrSignature      = types.ErrSignature
	ErrInvalidMessage = types.ErrInvalidMessage

	NotFound       = types.NotFound
	SignatureError = types.SignatureError
	InvalidMessage = types.InvalidMessage
	KindOf         = types.KindOf
	MessageOf      = types.MessageOf
)
