package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/voy/internal/adapter"
	"github.com/MKhiriev/voy/internal/logger"
	"github.com/MKhiriev/voy/models"
)

// tokenEnv holds the bearer token between invocations.
const tokenEnv = "VOY_TOKEN"

var (
	errUnknownCommand = errors.New("unknown command")
	errMissingFlag    = errors.New("missing required flag")
)

type cli struct {
	adapter adapter.ServerAdapter
	out     io.Writer
	getenv  func(string) string
	logger  *logger.Logger
}

func newCLI(serverAdapter adapter.ServerAdapter, out io.Writer, logger *logger.Logger) *cli {
	return &cli{adapter: serverAdapter, out: out, getenv: os.Getenv, logger: logger}
}

func (c *cli) run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		c.printUsage()
		return fmt.Errorf("%w: none given", errUnknownCommand)
	}

	command, args := args[0], args[1:]
	switch command {
	case "register":
		return c.runRegister(ctx, args)
	case "login":
		return c.runLogin(ctx, args)
	case "profile":
		return c.runProfile(ctx, args)
	case "set-number":
		return c.runSetNumber(ctx, args)
	case "documents":
		return c.runDocuments(ctx, args)
	case "upload":
		return c.runUpload(ctx, args)
	case "download":
		return c.runDownload(ctx, args)
	case "notes":
		return c.runNotes(ctx, args)
	case "version":
		return c.runVersion(ctx, args)
	case "help", "-h", "--help":
		c.printUsage()
		return nil
	default:
		c.printUsage()
		return fmt.Errorf("%w: %s", errUnknownCommand, command)
	}
}

func (c *cli) printUsage() {
	fmt.Fprint(c.out, `Usage: voy <command> [flags]

Commands:
  register    -email -password [-name]      create an account and print its token
  login       -email -password              print a fresh token
  profile                                   show the profile
  set-number  -field -value                 set nif, niss, sns or passport
  documents                                 list documents
  upload      -name -category [-file]       add a document
  download    -id [-out]                    save the attached file of a document
  notes                                     list notes
  version                                   show client and server versions

Authenticated commands take -token or read `+tokenEnv+`.
`)
}

// newFlagSet returns a flag set that reports errors instead of exiting. withToken
// adds the -token flag defaulting to the environment.
func (c *cli) newFlagSet(name string, withToken bool) (*flag.FlagSet, *string) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(c.out)
	if !withToken {
		return fs, nil
	}
	return fs, fs.String("token", c.getenv(tokenEnv), "bearer token (default $"+tokenEnv+")")
}

func (c *cli) parseAuthed(fs *flag.FlagSet, token *string, args []string) error {
	if err := fs.Parse(args); err != nil {
		return err
	}
	if strings.TrimSpace(*token) == "" {
		return fmt.Errorf("%w: -token (or %s)", errMissingFlag, tokenEnv)
	}
	c.adapter.SetToken(*token)
	return nil
}

func (c *cli) runRegister(ctx context.Context, args []string) error {
	fs, _ := c.newFlagSet("register", false)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	name := fs.String("name", "", "display name")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := required("email", *email, "password", *password); err != nil {
		return err
	}

	user, err := c.adapter.Register(ctx, models.User{Email: *email, Password: *password, DisplayName: *name})
	if err != nil {
		return err
	}
	return c.printToken(user)
}

func (c *cli) runLogin(ctx context.Context, args []string) error {
	fs, _ := c.newFlagSet("login", false)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := required("email", *email, "password", *password); err != nil {
		return err
	}

	user, err := c.adapter.Login(ctx, models.User{Email: *email, Password: *password})
	if err != nil {
		return err
	}
	return c.printToken(user)
}

func (c *cli) printToken(user models.User) error {
	c.logger.Info().Str("user_id", user.UserID).Msg("signed in")
	_, err := fmt.Fprintf(c.out, "user: %s\nexport %s=%s\n", user.UserID, tokenEnv, c.adapter.Token())
	return err
}

func (c *cli) runProfile(ctx context.Context, args []string) error {
	fs, token := c.newFlagSet("profile", true)
	if err := c.parseAuthed(fs, token, args); err != nil {
		return err
	}

	profile, err := c.adapter.GetProfile(ctx)
	if err != nil {
		return err
	}
	return c.printJSON(profile)
}

func (c *cli) runSetNumber(ctx context.Context, args []string) error {
	fs, token := c.newFlagSet("set-number", true)
	field := fs.String("field", "", "nif, niss, sns or passport")
	value := fs.String("value", "", "number to store, empty clears it")
	if err := c.parseAuthed(fs, token, args); err != nil {
		return err
	}
	if err := required("field", *field); err != nil {
		return err
	}

	profile, err := c.adapter.UpdateNumber(ctx, models.NumberUpdate{Field: models.ProtectedNumber(*field), Value: *value})
	if err != nil {
		return err
	}
	return c.printJSON(profile)
}

func (c *cli) runDocuments(ctx context.Context, args []string) error {
	fs, token := c.newFlagSet("documents", true)
	if err := c.parseAuthed(fs, token, args); err != nil {
		return err
	}

	documents, err := c.adapter.ListDocuments(ctx)
	if err != nil {
		return err
	}
	for _, document := range documents {
		attachment := "-"
		if document.FileType != nil {
			attachment = *document.FileType
		}
		fmt.Fprintf(c.out, "%s\t%s\t%s\t%s\n", document.ID, document.Category, document.Name, attachment)
	}
	return nil
}

func (c *cli) runUpload(ctx context.Context, args []string) error {
	fs, token := c.newFlagSet("upload", true)
	name := fs.String("name", "", "document name")
	category := fs.String("category", "", "document category")
	path := fs.String("file", "", "file to attach")
	if err := c.parseAuthed(fs, token, args); err != nil {
		return err
	}
	if err := required("name", *name, "category", *category); err != nil {
		return err
	}

	var file *models.DocumentFile
	if *path != "" {
		f, err := os.Open(*path)
		if err != nil {
			return fmt.Errorf("open file: %w", err)
		}
		defer f.Close()

		info, err := f.Stat()
		if err != nil {
			return fmt.Errorf("stat file: %w", err)
		}

		file = &models.DocumentFile{
			FileName:    filepath.Base(*path),
			ContentType: mime.TypeByExtension(filepath.Ext(*path)),
			Size:        info.Size(),
			Content:     f,
		}
	}

	document, err := c.adapter.UploadDocument(ctx, *name, *category, file)
	if err != nil {
		return err
	}
	return c.printJSON(document)
}

func (c *cli) runDownload(ctx context.Context, args []string) error {
	fs, token := c.newFlagSet("download", true)
	id := fs.String("id", "", "document id")
	out := fs.String("out", "", "destination file, stdout when empty")
	if err := c.parseAuthed(fs, token, args); err != nil {
		return err
	}
	if err := required("id", *id); err != nil {
		return err
	}

	if *out == "" {
		_, err := c.adapter.DownloadDocument(ctx, *id, c.out)
		return err
	}

	f, err := os.Create(*out)
	if err != nil {
		return fmt.Errorf("create file: %w", err)
	}

	n, err := c.adapter.DownloadDocument(ctx, *id, f)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(*out)
		return err
	}

	fmt.Fprintf(c.out, "saved %d bytes to %s\n", n, *out)
	return nil
}

func (c *cli) runNotes(ctx context.Context, args []string) error {
	fs, token := c.newFlagSet("notes", true)
	if err := c.parseAuthed(fs, token, args); err != nil {
		return err
	}

	notes, err := c.adapter.ListNotes(ctx)
	if err != nil {
		return err
	}
	for _, note := range notes {
		marker := " "
		if note.IsImportant {
			marker = "*"
		}
		fmt.Fprintf(c.out, "%s %s\t%s\n", marker, note.ID, note.Title)
	}
	return nil
}

func (c *cli) runVersion(ctx context.Context, args []string) error {
	fs, _ := c.newFlagSet("version", false)
	if err := fs.Parse(args); err != nil {
		return err
	}

	fmt.Fprintf(c.out, "client: %s\n", models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	serverVersion, err := c.adapter.GetServerVersion(ctx)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(c.out, "server: %s\n", serverVersion)
	return err
}

func (c *cli) printJSON(v any) error {
	enc := json.NewEncoder(c.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// required checks name/value pairs and reports the first empty one.
func required(pairs ...string) error {
	for i := 0; i+1 < len(pairs); i += 2 {
		if strings.TrimSpace(pairs[i+1]) == "" {
			return fmt.Errorf("%w: -%s", errMissingFlag, pairs[i])
		}
	}
	return nil
}
