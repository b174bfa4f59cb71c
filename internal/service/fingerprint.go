package service

// Fingerprint groups the request-serving orchestrators behind one handle.
type Fingerprint struct {
	*Enrollment
	*Identification
	*Deletion
}

func NewFingerprint(enrollment *Enrollment, identification *Identification, deletion *Deletion) *Fingerprint {
	return &Fingerprint{
		Enrollment:     enrollment,
		Identification: identification,
		Deletion:       deletion,
	}
}
