// Package changelog turns raw git log output into the draft message
// for an annotated release tag.
//
// Commit subjects carrying a trailing pull-request reference of the
// form (#123) are grouped under "Pull Requests"; everything else lands
// under "Other Changes". Both groups preserve the order in which the
// commits were encountered, and the rendered draft is what the user
// reviews in their editor before the tag is created.
package changelog
