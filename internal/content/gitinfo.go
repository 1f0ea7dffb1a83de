package content

import (
	"time"

	git "github.com/go-git/go-git/v5"
)

// lastCommitTime reads the committer timestamp of HEAD in a local
// repository.
func lastCommitTime(repoPath string) (time.Time, error) {
	repo, err := git.PlainOpen(repoPath)
	if err != nil {
		return time.Time{}, err
	}

	head, err := repo.Head()
	if err != nil {
		return time.Time{}, err
	}

	commit, err := repo.CommitObject(head.Hash())
	if err != nil {
		return time.Time{}, err
	}

	return commit.Committer.When, nil
}

// Enrich fills LastActivity for projects that point at a local git
// checkout. Projects whose repositories cannot be read are left
// untouched; enrichment is best effort.
func Enrich(site *Site) {
	for i := range site.Projects {
		project := &site.Projects[i]
		if project.RepoPath == "" {
			continue
		}
		when, err := lastCommitTime(project.RepoPath)
		if err != nil {
			continue
		}
		project.LastActivity = &when
	}
}
