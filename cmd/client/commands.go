package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/MKhiriev/go-file-share/internal/adapter"
	"github.com/MKhiriev/go-file-share/models"
	"github.com/google/uuid"
)

var errUsage = errors.New("usage: go-file-share-client <register|login|me|upload|share|retrieve|download|delete|revoke|sent|received|version> [flags]")

type commandLine struct {
	adapter   adapter.ServerAdapter
	tokenFile string
	out       io.Writer
}

func (c *commandLine) run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errUsage
	}

	commands := map[string]func(context.Context, []string) error{
		"register": c.register,
		"login":    c.login,
		"me":       c.me,
		"upload":   c.upload,
		"share":    c.share,
		"retrieve": c.retrieve,
		"download": c.download,
		"delete":   c.deleteFile,
		"revoke":   c.revoke,
		"sent":     c.sent,
		"received": c.received,
		"version":  c.version,
	}

	command, ok := commands[args[0]]
	if !ok {
		return fmt.Errorf("unknown command %q: %w", args[0], errUsage)
	}
	return command(ctx, args[1:])
}

func (c *commandLine) loadToken() error {
	raw, err := os.ReadFile(c.tokenFile)
	if err != nil {
		return fmt.Errorf("not logged in (run login first): %w", err)
	}
	c.adapter.SetToken(string(raw))
	return nil
}

func (c *commandLine) saveToken(token string) error {
	if err := os.WriteFile(c.tokenFile, []byte(token), 0o600); err != nil {
		return fmt.Errorf("save token: %w", err)
	}
	return nil
}

func (c *commandLine) register(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("register", flag.ContinueOnError)
	name := fs.String("name", "", "display name")
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	token, err := c.adapter.Register(ctx, models.RegisterUserRequest{
		Username:        *name,
		Email:           *email,
		Password:        *password,
		PasswordConfirm: *password,
	})
	if err != nil {
		return err
	}
	if err = c.saveToken(token); err != nil {
		return err
	}

	fmt.Fprintln(c.out, "registered", *email)
	return nil
}

func (c *commandLine) login(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	token, err := c.adapter.Login(ctx, models.LoginUserRequest{Email: *email, Password: *password})
	if err != nil {
		return err
	}
	if err = c.saveToken(token); err != nil {
		return err
	}

	fmt.Fprintln(c.out, "logged in as", *email)
	return nil
}

func (c *commandLine) me(ctx context.Context, _ []string) error {
	if err := c.loadToken(); err != nil {
		return err
	}

	user, err := c.adapter.Me(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(c.out, "%s\t%s\t%s\n", user.ID, user.Username, user.Email)
	return nil
}

// linkFlags registers the share options common to upload and share.
func linkFlags(fs *flag.FlagSet) func() (models.ShareRequest, error) {
	recipient := fs.String("to", "", "recipient email")
	password := fs.String("password", "", "link password")
	expires := fs.Duration("expires", 24*time.Hour, "link lifetime; 0 asks for a permanent link")

	return func() (models.ShareRequest, error) {
		req := models.ShareRequest{RecipientEmail: *recipient, Password: *password}
		if *expires < 0 {
			return models.ShareRequest{}, fmt.Errorf("negative -expires %s", *expires)
		}
		if *expires > 0 {
			expiresAt := time.Now().Add(*expires).UTC().Truncate(time.Second)
			req.ExpirationDate = &expiresAt
		}
		return req, nil
	}
}

func (c *commandLine) upload(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("upload", flag.ContinueOnError)
	path := fs.String("file", "", "file to upload")
	noShare := fs.Bool("no-share", false, "upload without creating a link")
	retain := fs.Bool("retain", false, "keep the file after its links are gone")
	shareRequest := linkFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *path == "" {
		return fmt.Errorf("-file is required")
	}
	if err := c.loadToken(); err != nil {
		return err
	}

	content, err := os.ReadFile(*path)
	if err != nil {
		return fmt.Errorf("read %s: %w", *path, err)
	}
	link, err := shareRequest()
	if err != nil {
		return err
	}

	resp, err := c.adapter.Upload(ctx, adapter.UploadFile{
		Filename: filepath.Base(*path),
		Content:  content,
		Share:    !*noShare,
		Retain:   *retain,
		Link:     link,
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(c.out, "file:", resp.File.ID)
	if resp.Link != nil {
		printLink(c.out, *resp.Link)
	}
	return nil
}

func (c *commandLine) share(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("share", flag.ContinueOnError)
	rawFileID := fs.String("file-id", "", "id of an uploaded file")
	shareRequest := linkFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	fileID, err := uuid.Parse(*rawFileID)
	if err != nil {
		return fmt.Errorf("invalid -file-id: %w", err)
	}
	if err = c.loadToken(); err != nil {
		return err
	}
	req, err := shareRequest()
	if err != nil {
		return err
	}

	link, err := c.adapter.CreateLink(ctx, fileID, req)
	if err != nil {
		return err
	}

	printLink(c.out, link)
	return nil
}

func printLink(w io.Writer, link models.ShareLinkResponse) {
	fmt.Fprintln(w, "link:", link.LinkID)
	fmt.Fprintln(w, "shared id:", link.SharedID)
	if link.ExpiresAt != nil {
		fmt.Fprintln(w, "expires:", link.ExpiresAt.Format(time.RFC3339))
	}
}

func (c *commandLine) retrieve(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("retrieve", flag.ContinueOnError)
	sharedID := fs.String("id", "", "shared id of the link")
	password := fs.String("password", "", "link password")
	dir := fs.String("out", ".", "directory to save the file into")
	if err := fs.Parse(args); err != nil {
		return err
	}

	file, err := c.adapter.Retrieve(ctx, models.RetrieveFileRequest{SharedID: *sharedID, Password: *password})
	if err != nil {
		return err
	}
	return c.save(*dir, file)
}

func (c *commandLine) download(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("download", flag.ContinueOnError)
	rawFileID := fs.String("file-id", "", "id of an uploaded file")
	dir := fs.String("out", ".", "directory to save the file into")
	if err := fs.Parse(args); err != nil {
		return err
	}

	fileID, err := uuid.Parse(*rawFileID)
	if err != nil {
		return fmt.Errorf("invalid -file-id: %w", err)
	}
	if err = c.loadToken(); err != nil {
		return err
	}

	file, err := c.adapter.Download(ctx, fileID)
	if err != nil {
		return err
	}
	return c.save(*dir, file)
}

// save writes file into dir under its base name only, so a server supplied
// name cannot escape dir.
func (c *commandLine) save(dir string, file adapter.RetrievedFile) error {
	name := filepath.Base(file.Filename)
	if name == "." || name == string(filepath.Separator) || name == "" {
		name = "download"
	}

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, file.Content, 0o600); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	fmt.Fprintf(c.out, "saved %s (%d bytes)\n", path, len(file.Content))
	return nil
}

func (c *commandLine) deleteFile(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("delete", flag.ContinueOnError)
	rawFileID := fs.String("file-id", "", "id of an uploaded file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	fileID, err := uuid.Parse(*rawFileID)
	if err != nil {
		return fmt.Errorf("invalid -file-id: %w", err)
	}
	if err = c.loadToken(); err != nil {
		return err
	}

	if err = c.adapter.DeleteFile(ctx, fileID); err != nil {
		return err
	}
	fmt.Fprintln(c.out, "deleted", fileID)
	return nil
}

func (c *commandLine) revoke(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("revoke", flag.ContinueOnError)
	rawLinkID := fs.String("link-id", "", "id of a share link")
	if err := fs.Parse(args); err != nil {
		return err
	}

	linkID, err := uuid.Parse(*rawLinkID)
	if err != nil {
		return fmt.Errorf("invalid -link-id: %w", err)
	}
	if err = c.loadToken(); err != nil {
		return err
	}

	if err = c.adapter.RevokeLink(ctx, linkID); err != nil {
		return err
	}
	fmt.Fprintln(c.out, "revoked", linkID)
	return nil
}

func pageFlags(fs *flag.FlagSet) *models.Page {
	page := &models.Page{}
	fs.IntVar(&page.Number, "page", 0, "page number, from 1")
	fs.IntVar(&page.Limit, "limit", 0, "page size, up to 50")
	return page
}

func (c *commandLine) sent(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("sent", flag.ContinueOnError)
	page := pageFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := c.loadToken(); err != nil {
		return err
	}

	resp, err := c.adapter.ListSent(ctx, *page)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "LINK\tFILE\tRECIPIENT\tEXPIRES\tSTATE")
	for _, f := range resp.Files {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", f.LinkID, f.Filename, orDash(f.RecipientEmail), formatExpiry(f.ExpirationDate), f.State)
	}
	fmt.Fprintf(tw, "total: %d\n", resp.Results)
	return tw.Flush()
}

func (c *commandLine) received(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("received", flag.ContinueOnError)
	page := pageFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := c.loadToken(); err != nil {
		return err
	}

	resp, err := c.adapter.ListReceived(ctx, *page)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SHARED ID\tFILE\tSENDER\tEXPIRES")
	for _, f := range resp.Files {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", f.Token, f.Filename, orDash(f.SenderEmail), formatExpiry(f.ExpirationDate))
	}
	fmt.Fprintf(tw, "total: %d\n", resp.Results)
	return tw.Flush()
}

func (c *commandLine) version(context.Context, []string) error {
	fmt.Fprintln(c.out, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))
	return nil
}

func orDash(s *string) string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return "-"
	}
	return *s
}

func formatExpiry(t *time.Time) string {
	if t == nil {
		return "never"
	}
	return t.Format(time.RFC3339)
}
