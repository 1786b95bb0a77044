package redeem

import (
	"context"

	"vitaverify/internal/domain"
	"vitaverify/internal/logging"
	"vitaverify/internal/protocol/attribute"
	"vitaverify/internal/protocol/contract"
	"vitaverify/internal/protocol/redemption"
)

// Service issues redemption codes for verified engagement.
type Service struct {
	parser   domain.SessionParser
	verifier domain.AttributeVerifier
	signer   domain.CodeSigner
	log      *logging.Logger
}

// New constructs a redeem Service. A nil logger discards output.
func New(
	parser domain.SessionParser,
	verifier domain.AttributeVerifier,
	signer domain.CodeSigner,
	log *logging.Logger,
) *Service {
	if log == nil {
		log = logging.Nop()
	}
	return &Service{
		parser:   parser,
		verifier: verifier,
		signer:   signer,
		log:      log.Component("redeem"),
	}
}

// VerifyAndSign validates both sessions and signs a code for the post.
//
// Steps:
//  1. Parse the post payload, then the author payload.
//  2. Reject sessions with empty application data, signature or attributes.
//  3. Verify every attribute of the post session, then of the author session;
//     each pass stops at its first failed signature.
//  4. Require both sessions to carry the same author.
//  5. Score the post's engagement, extract its contract address and sign the
//     resulting code.
func (s *Service) VerifyAndSign(
	ctx context.Context,
	postPayload string,
	authorPayload string,
) (domain.SignedRedemptionCode, error) {
	if err := ctx.Err(); err != nil {
		return domain.SignedRedemptionCode{}, err
	}

	post, err := s.parser.Parse(postPayload)
	if err != nil {
		return domain.SignedRedemptionCode{}, err
	}
	author, err := s.parser.Parse(authorPayload)
	if err != nil {
		return domain.SignedRedemptionCode{}, err
	}

	if err := checkNonEmpty(post, author); err != nil {
		return domain.SignedRedemptionCode{}, err
	}
	s.log.Debugf("verifying %d post and %d author attributes", len(post.Attributes), len(author.Attributes))

	// The author pass runs even when the post pass came back false.
	postValid, err := s.verifyAll(post.Attributes)
	if err != nil {
		return domain.SignedRedemptionCode{}, err
	}
	authorValid, err := s.verifyAll(author.Attributes)
	if err != nil {
		return domain.SignedRedemptionCode{}, err
	}
	if !postValid || !authorValid {
		s.log.Zerolog().Warn().
			Bool("post_valid", postValid).
			Bool("author_valid", authorValid).
			Msg("attribute signature rejected")
		return domain.SignedRedemptionCode{}, domain.InvalidMessage("Invalid signature")
	}

	postAuthor, err := attribute.Find(post.Attributes, domain.FieldAuthor)
	if err != nil {
		return domain.SignedRedemptionCode{}, err
	}
	authorAuthor, err := attribute.Find(author.Attributes, domain.FieldAuthor)
	if err != nil {
		return domain.SignedRedemptionCode{}, err
	}
	if postAuthor != authorAuthor {
		return domain.SignedRedemptionCode{}, domain.InvalidMessage("Invalid author")
	}

	code, err := s.buildCode(post.Attributes)
	if err != nil {
		return domain.SignedRedemptionCode{}, err
	}
	signed := s.signer.Sign(code)

	s.log.Zerolog().Info().
		Str("post_id", code.PostID).
		Str("contract_address", code.ContractAddress).
		Str("chain", string(contract.Classify(code.ContractAddress))).
		Uint64("engagement", code.Engagement).
		Msg("redemption code issued")
	return signed, nil
}

func checkNonEmpty(post, author domain.AttestedSession) error {
	if post.ApplicationData == "" || author.ApplicationData == "" {
		return domain.InvalidMessage("No application data found")
	}
	if post.Signature == "" || author.Signature == "" {
		return domain.InvalidMessage("No signature found")
	}
	if len(post.Attributes) == 0 || len(author.Attributes) == 0 {
		return domain.InvalidMessage("No attributes found")
	}
	return nil
}

// verifyAll folds the verifier over attrs, stopping at the first false.
func (s *Service) verifyAll(attrs []domain.Attribute) (bool, error) {
	for _, attr := range attrs {
		ok, err := s.verifier.Verify(attr)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

func (s *Service) buildCode(attrs []domain.Attribute) (domain.RedemptionCode, error) {
	engagement, err := attribute.FindEngagement(attrs)
	if err != nil {
		return domain.RedemptionCode{}, err
	}
	score, err := redemption.ScoreEngagement(engagement)
	if err != nil {
		return domain.RedemptionCode{}, err
	}
	postID, err := attribute.Find(attrs, domain.FieldPostID)
	if err != nil {
		return domain.RedemptionCode{}, err
	}
	content, err := attribute.Find(attrs, domain.FieldContent)
	if err != nil {
		return domain.RedemptionCode{}, err
	}
	ca, err := contract.Extract(content)
	if err != nil {
		return domain.RedemptionCode{}, err
	}
	return redemption.Build(postID, ca, score), nil
}

// Compile-time assertion that Service implements domain.Redeemer.
var _ domain.Redeemer = (*Service)(nil)
