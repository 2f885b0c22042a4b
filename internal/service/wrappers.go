package service

// NoteServiceWrapper defines middleware composition for NoteService.
// Implementations wrap an existing NoteService to add behavior such as
// logging or validating.
type NoteServiceWrapper interface {
	Wrap(NoteService) NoteService // returns a decorated NoteService applying additional behavior
}
