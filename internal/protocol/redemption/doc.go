// Package redemption scores attested engagement and formats redemption codes.
//
// A code is version-client-postId-contractAddress-engagement joined with "-"
// and no escaping. Engagement is bookmarks + favorites + retweets + 1; the
// fixed offset means a post with no engagement still scores 1.
package redemption
