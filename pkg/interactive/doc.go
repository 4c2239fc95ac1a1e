// Package interactive implements the prompt driven renaming session.
//
// A Session holds the editable fields (directory, pattern and start
// number) and the last preview. Editing any field discards the preview,
// and Execute refuses to run without one, so the user always sees the
// renames before confirming them. Execute still plans again from the
// directory's current contents.
//
// Run drives a Session through a Prompter. PtermPrompter is the terminal
// implementation; tests substitute a mock.
package interactive
