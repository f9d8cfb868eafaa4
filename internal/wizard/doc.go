// Package wizard derives the views the wizard pages render from a session
// state and the CMS content: display ordering, reason groups, the variant
// comparison table, recommendations, and step progression
package wizard
