package cli

import (
	"context"
	"fmt"

	clientapi "github.com/iudanet/codeclimb/internal/client/api"
	"github.com/iudanet/codeclimb/internal/client/auth"
	"github.com/iudanet/codeclimb/internal/client/iocli"
	"github.com/iudanet/codeclimb/internal/client/storage"
)

// Cli связывает команды с их зависимостями
type Cli struct {
	io          iocli.IO
	apiClient   clientapi.ClientAPI
	authService *auth.Service
	drafts      storage.DraftStorage
	serverURL   string
}

// New создает Cli
func New(io iocli.IO, apiClient clientapi.ClientAPI, authService *auth.Service, drafts storage.DraftStorage, serverURL string) *Cli {
	return &Cli{
		io:          io,
		apiClient:   apiClient,
		authService: authService,
		drafts:      drafts,
		serverURL:   serverURL,
	}
}

// requireSession возвращает активную сессию или понятную ошибку
func (c *Cli) requireSession(ctx context.Context) (*storage.Session, error) {
	session, err := c.authService.Session(ctx)
	if err != nil {
		if auth.IsNotAuthenticated(err) {
			return nil, fmt.Errorf("not authenticated. Please run 'codeclimb login' first")
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return session, nil
}

func PrintUsage() {
	fmt.Println("CodeClimb Client")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  codeclimb [OPTIONS] COMMAND")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version      Show version information")
	fmt.Println("  --server URL   Server URL (default: http://localhost:8080)")
	fmt.Println("  --db PATH      Path to local database (default: codeclimb-client.db)")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  signup                      Register new user")
	fmt.Println("  login                       Login to server")
	fmt.Println("  logout                      Logout")
	fmt.Println("  status                      Show session status")
	fmt.Println("  lists                       Show problem lists")
	fmt.Println("  create-list <name>          Create a new problem list")
	fmt.Println("  problems <listID>           Show list problems with latest attempts")
	fmt.Println("  track <listID>              Interactive attempt editor with autosave")
	fmt.Println("  dashboard                   Show aggregate statistics")
	fmt.Println()
	fmt.Println("Track mode commands:")
	fmt.Println("  <problemID> field=value     Edit a draft field (autosaved after a quiet period)")
	fmt.Println("                              fields: solved date time attempts confidence tc sc notes url")
	fmt.Println("  <problemID> attempts+       Increment attempt counter (saved immediately)")
	fmt.Println("  rows                        Show rows with unsaved or failed edits")
	fmt.Println("  history <problemID>         Show saved attempts for a problem")
	fmt.Println("  delete <problemID> <id>     Delete a saved attempt")
	fmt.Println("  retry <problemID>           Retry a failed save")
	fmt.Println("  quit                        Flush pending saves and exit")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  codeclimb login")
	fmt.Println("  codeclimb lists")
	fmt.Println("  codeclimb track 7b4c...")
	fmt.Println("  > 42 notes=review BFS once more")
	fmt.Println("  > 42 solved=true")
}
