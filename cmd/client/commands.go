package main

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-note-keeper/internal/adapter"
	"github.com/MKhiriev/go-note-keeper/internal/crypto"
	"github.com/MKhiriev/go-note-keeper/models"
)

var errUsage = errors.New("usage: note-client <get|create|update|delete|search|attach|unlock|lock> [flags]")

type command func(ctx context.Context, client adapter.NoteClient, args []string, out io.Writer) error

var commands = map[string]command{
	"get":    getNote,
	"create": createNote,
	"update": updateNote,
	"delete": deleteNote,
	"search": search,
	"attach": attachImage,
	"unlock": unlock,
	"lock":   lock,
}

func run(ctx context.Context, client adapter.NoteClient, args []string, out io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}
	cmd, ok := commands[args[0]]
	if !ok {
		return fmt.Errorf("unknown command %q: %w", args[0], errUsage)
	}
	return cmd(ctx, client, args[1:], out)
}

func printJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func getNote(ctx context.Context, client adapter.NoteClient, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("get", flag.ContinueOnError)
	id := fs.String("id", "", "note id")
	if err := fs.Parse(args); err != nil {
		return err
	}

	detail, err := client.GetNote(ctx, *id)
	if err != nil {
		return err
	}
	return printJSON(out, detail)
}

func createNote(ctx context.Context, client adapter.NoteClient, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("create", flag.ContinueOnError)
	parent := fs.String("parent", models.RootNoteID, "parent note id")
	title := fs.String("title", "", "note title")
	text := fs.String("text", "", "note text")
	protected := fs.Bool("protected", false, "store title and text encrypted")
	after := fs.String("after", "", "sibling note tree id to insert after")
	if err := fs.Parse(args); err != nil {
		return err
	}

	note := models.NewNote{Title: *title, Text: *text, IsProtected: *protected}
	if *after != "" {
		note.Target = models.TargetAfter
		note.TargetNoteTreeID = *after
	}

	created, err := client.CreateNote(ctx, *parent, note)
	if err != nil {
		return err
	}
	return printJSON(out, created)
}

func updateNote(ctx context.Context, client adapter.NoteClient, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("update", flag.ContinueOnError)
	id := fs.String("id", "", "note id")
	title := fs.String("title", "", "new title")
	text := fs.String("text", "", "new text")
	protected := fs.String("protected", "", "true or false to change protection")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var update models.NoteUpdate
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "title":
			update.Title = title
		case "text":
			update.Text = text
		}
	})
	switch *protected {
	case "":
	case "true", "false":
		v := *protected == "true"
		update.IsProtected = &v
	default:
		return fmt.Errorf("invalid -protected value %q", *protected)
	}

	return client.UpdateNote(ctx, *id, update)
}

func deleteNote(ctx context.Context, client adapter.NoteClient, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("delete", flag.ContinueOnError)
	treeID := fs.String("tree-id", "", "note tree id of the placement to delete")
	if err := fs.Parse(args); err != nil {
		return err
	}
	return client.DeleteNote(ctx, *treeID)
}

func search(ctx context.Context, client adapter.NoteClient, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("search", flag.ContinueOnError)
	query := fs.String("q", "", "substring to look for")
	if err := fs.Parse(args); err != nil {
		return err
	}

	ids, err := client.Search(ctx, *query)
	if err != nil {
		return err
	}
	for _, id := range ids {
		fmt.Fprintln(out, id)
	}
	return nil
}

func attachImage(ctx context.Context, client adapter.NoteClient, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("attach", flag.ContinueOnError)
	id := fs.String("id", "", "note id")
	file := fs.String("file", "", "image file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	data, err := os.ReadFile(*file)
	if err != nil {
		return fmt.Errorf("read image: %w", err)
	}

	imageID, err := client.AttachImage(ctx, *id, models.NewImage{
		Name: filepath.Base(*file),
		Mime: mime.TypeByExtension(filepath.Ext(*file)),
		Data: data,
	})
	if err != nil {
		return err
	}
	fmt.Fprintln(out, imageID)
	return nil
}

func unlock(ctx context.Context, client adapter.NoteClient, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("unlock", flag.ContinueOnError)
	keyHex := fs.String("key", "", "hex encoded data key")
	generate := fs.Bool("generate", false, "bind a fresh random data key and print it")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var (
		key []byte
		err error
	)
	switch {
	case *generate && *keyHex != "":
		return errors.New("-key and -generate are mutually exclusive")
	case *generate:
		key, err = crypto.GenerateDataKey()
		if err != nil {
			return fmt.Errorf("generate data key: %w", err)
		}
	default:
		key, err = hex.DecodeString(*keyHex)
		if err != nil {
			return fmt.Errorf("decode data key: %w", err)
		}
	}

	if err = client.UnlockSession(ctx, key); err != nil {
		return err
	}
	if *generate {
		// the only copy of the key; protected notes are unreadable without it
		fmt.Fprintln(out, hex.EncodeToString(key))
	}
	return nil
}

func lock(ctx context.Context, client adapter.NoteClient, _ []string, _ io.Writer) error {
	return client.LockSession(ctx)
}
