package cache

const (
	jobMatchesPrefix    = "match:job:"
	workerMatchesPrefix = "match:worker:"
)

// JobMatchesKey holds the ranked workers of a job.
func JobMatchesKey(jobID string) string { return jobMatchesPrefix + jobID }

// WorkerMatchesKey holds the ranked jobs of a worker.
func WorkerMatchesKey(workerID string) string { return workerMatchesPrefix + workerID }

func JobMatchesKeys(jobIDs []string) []string {
	out := make([]string, 0, len(jobIDs))
	for _, id := range jobIDs {
		out = append(out, JobMatchesKey(id))
	}
	return out
}

func WorkerMatchesKeys(workerIDs []string) []string {
	out := make([]string, 0, len(workerIDs))
	for _, id := range workerIDs {
		out = append(out, WorkerMatchesKey(id))
	}
	return out
}
