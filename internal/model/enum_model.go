package model

type Career string

const (
	CareerNewbie Career = "NEWBIE"
	CareerJunior Career = "JUNIOR"
	CareerSenior Career = "SENIOR"
)

func (c Career) Valid() bool {
	switch c {
	case "", CareerNewbie, CareerJunior, CareerSenior:
		return true
	}
	return false
}

type StudyStyle string

const (
	StudyStyleOnline  StudyStyle = "ONLINE"
	StudyStyleOffline StudyStyle = "OFFLINE"
	StudyStyleHybrid  StudyStyle = "HYBRID"
)

func (s StudyStyle) Valid() bool {
	switch s {
	case "", StudyStyleOnline, StudyStyleOffline, StudyStyleHybrid:
		return true
	}
	return false
}

type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "PENDING"
	ApplicationAccepted ApplicationStatus = "ACCEPTED"
	ApplicationRejected ApplicationStatus = "REJECTED"
)

type MemberRole string

const (
	RoleLeader MemberRole = "LEADER"
	RoleMember MemberRole = "MEMBER"
)
