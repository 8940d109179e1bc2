package grpcserver

import (
	"time"

	"google.golang.org/protobuf/types/known/timestamppb"

	"jobmate/placement-service/internal/lifecycle"
	pb "jobmate/placement-service/internal/pb"
)

func optTimestamp(t *time.Time) *timestamppb.Timestamp {
	if t == nil {
		return nil
	}
	return timestamppb.New(*t)
}

// applicationToProto converts an application. Only the stage matching the
// status is set.
func applicationToProto(a *lifecycle.Application) *pb.Application {
	p := &pb.Application{
		Id:               a.ID,
		ApplicantId:      a.ApplicantID,
		CompanyId:        a.CompanyID,
		ListingId:        a.ListingID,
		Status:           string(a.Status),
		ValidityUntil:    timestamppb.New(a.ValidityUntil),
		ValidityExtended: a.ValidityExtended,
		Version:          a.Version,
		CreatedAt:        timestamppb.New(a.CreatedAt),
		UpdatedAt:        timestamppb.New(a.UpdatedAt),
		History:          make([]*pb.HistoryEntry, 0, len(a.History)),
	}
	if iv, ok := a.Interview(); ok {
		p.Interview = &pb.Interview{At: timestamppb.New(iv.At), Location: iv.Location}
	}
	if o, ok := a.Offer(); ok {
		p.Offer = &pb.Offer{SentAt: timestamppb.New(o.SentAt), ValidUntil: timestamppb.New(o.ValidUntil), LetterKey: o.LetterKey}
	}
	if r, ok := a.Rejection(); ok {
		p.Rejection = &pb.Rejection{By: string(r.By), Reason: r.Reason}
	}
	for _, h := range a.History {
		p.History = append(p.History, &pb.HistoryEntry{
			At:        timestamppb.New(h.At),
			ActorId:   h.ActorID,
			ActorRole: string(h.ActorRole),
			Action:    h.Action,
			From:      string(h.From),
			To:        string(h.To),
			Note:      h.Note,
		})
	}
	return p
}

func employmentToProto(e *lifecycle.Employment) *pb.Employment {
	p := &pb.Employment{
		Id:            e.ID,
		ApplicationId: e.ApplicationID,
		ApplicantId:   e.ApplicantID,
		CompanyId:     e.CompanyID,
		ListingId:     e.ListingID,
		Status:        string(e.Status),
		StartDate:     timestamppb.New(e.StartDate),
		EndDate:       timestamppb.New(e.EndDate),
		Version:       e.Version,
		CreatedAt:     timestamppb.New(e.CreatedAt),
		UpdatedAt:     timestamppb.New(e.UpdatedAt),
		RequiredDocs:  append([]string(nil), e.RequiredDocs...),
		Docs:          make([]*pb.Document, 0, len(e.Docs)),
		Notes:         make([]*pb.Note, 0, len(e.Notes)),
	}
	for _, d := range e.Docs {
		p.Docs = append(p.Docs, &pb.Document{
			Type:       d.Type,
			FileRef:    d.FileRef,
			UploadedAt: timestamppb.New(d.UploadedAt),
			Verified:   d.Verified,
			VerifiedBy: d.VerifiedBy,
			VerifiedAt: optTimestamp(d.VerifiedAt),
		})
	}
	for _, n := range e.Notes {
		p.Notes = append(p.Notes, &pb.Note{
			At: timestamppb.New(n.At), AuthorId: n.AuthorID, AuthorRole: string(n.AuthorRole), Text: n.Text,
		})
	}
	if e.PIC != nil {
		p.Pic = &pb.Contact{Name: e.PIC.Name, Email: e.PIC.Email, Phone: e.PIC.Phone}
	}
	return p
}

func requestToProto(r *lifecycle.Request) *pb.Request {
	return &pb.Request{
		Id:             r.ID,
		EmploymentId:   r.EmploymentID,
		Kind:           string(r.Kind),
		InitiatedBy:    string(r.InitiatedBy),
		InitiatorId:    r.InitiatorID,
		Status:         string(r.Status),
		ProposedDate:   timestamppb.New(r.ProposedDate),
		Reason:         r.Reason,
		DecisionRemark: r.DecisionRemark,
		DecidedBy:      r.DecidedBy,
		DecidedAt:      optTimestamp(r.DecidedAt),
		CreatedAt:      timestamppb.New(r.CreatedAt),
		UpdatedAt:      timestamppb.New(r.UpdatedAt),
	}
}

func reportToProto(r *lifecycle.Report) *pb.SweepReport {
	errs := make([]string, 0, len(r.Errors))
	for _, e := range r.Errors {
		errs = append(errs, e.Error())
	}
	return &pb.SweepReport{
		Pass:       r.Pass,
		Candidates: int32(r.Candidates),
		Applied:    int32(r.Applied),
		Skipped:    int32(r.Skipped),
		Failed:     int32(r.Failed),
		Errors:     errs,
		Started:    timestamppb.New(r.Started),
		DurationMs: r.Duration.Milliseconds(),
	}
}
