package security

import "verdata-backend/internal/domain"

// AccessPolicy is the single authority for role-based authorization. Every
// service consults it before touching the record store; a disallowed call
// fails with domain.ErrForbidden without reaching storage.
type AccessPolicy struct{}

func NewAccessPolicy() *AccessPolicy {
	return &AccessPolicy{}
}

// CanSubmit allows only applicant sessions to submit requests. Admins never
// submit on an applicant's behalf.
func (p *AccessPolicy) CanSubmit(sess *domain.Session) error {
	if !sess.IsApplicant() {
		return domain.ErrForbidden
	}
	return nil
}

// CanDecide allows only admin sessions to decide pending requests.
func (p *AccessPolicy) CanDecide(sess *domain.Session) error {
	if !sess.IsAdmin() {
		return domain.ErrForbidden
	}
	return nil
}

// CanListAll allows only admin sessions to see the full store.
func (p *AccessPolicy) CanListAll(sess *domain.Session) error {
	if !sess.IsAdmin() {
		return domain.ErrForbidden
	}
	return nil
}

// CanViewRequest scopes read access: admins see any request, applicants only
// their own. Applicant ownership is the exact name match plus the NIK bound
// at login, so two applicants sharing a display name stay separated.
func (p *AccessPolicy) CanViewRequest(sess *domain.Session, req *domain.VerificationRequest) error {
	if sess.IsAdmin() {
		return nil
	}
	if sess.IsApplicant() && p.Owns(sess, req) {
		return nil
	}
	return domain.ErrForbidden
}

// Owns reports whether an applicant session owns the given request.
func (p *AccessPolicy) Owns(sess *domain.Session, req *domain.VerificationRequest) bool {
	return req.ApplicantName == sess.Name && req.NIK == sess.NIK
}
